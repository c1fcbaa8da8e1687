package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
)

// ListPostsHandler godoc
// @Summary List Q&A posts
// @Tags qna
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.Response{data=[]models.Post}
// @Router /qna [get]
func ListPostsHandler(repo repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		p := page(c)
		posts, total, err := repo.List(ctx, p)
		if err != nil {
			return err
		}
		return paged(c, posts, total, p)
	}
}

// CreatePostHandler godoc
// @Summary Write a Q&A post
// @Tags qna
// @Accept json
// @Produce json
// @Param body body dto.PostRequest true "Post"
// @Success 201 {object} dto.Response{data=models.Post}
// @Failure 400 {object} dto.Response
// @Router /qna [post]
func CreatePostHandler(repo repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PostRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		post := body.ToModel()
		if err := repo.Insert(ctx, &post); err != nil {
			return err
		}
		return created(c, post)
	}
}

// UpdatePostHandler godoc
// @Summary Edit a Q&A post
// @Description Views and replies are left untouched.
// @Tags qna
// @Accept json
// @Produce json
// @Param body body dto.PostRequest true "Post with _id"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /qna [put]
func UpdatePostHandler(repo repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PostRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}
		id, err := targetID(c, body.ID)
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Replace(ctx, id, body.ToModel()); err != nil {
			return notFound(err, "post not found")
		}
		return c.JSON(dto.Message("post updated"))
	}
}

// DeletePostHandler godoc
// @Summary Delete a Q&A post
// @Tags qna
// @Produce json
// @Param id query string true "Post id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /qna [delete]
func DeletePostHandler(repo repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			return notFound(err, "post not found")
		}
		return c.JSON(dto.Message("post deleted"))
	}
}

// AddReplyHandler godoc
// @Summary Reply to a Q&A post
// @Tags qna
// @Accept json
// @Produce json
// @Param body body dto.ReplyRequest true "Reply"
// @Success 201 {object} dto.Response{data=models.Reply}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /qna/replies [post]
func AddReplyHandler(repo repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ReplyRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}
		id, err := parseID(body.QnaID)
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		reply := models.Reply{Content: body.Content, Writer: body.Writer, CreatedAt: repository.Now()}
		if err := repo.AppendReply(ctx, id, reply); err != nil {
			return notFound(err, "post not found")
		}
		return created(c, reply)
	}
}

// IncrementViewsHandler godoc
// @Summary Count a view of a Q&A post
// @Tags qna
// @Produce json
// @Param id query string true "Post id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /qna/views [put]
func IncrementViewsHandler(repo repository.PostRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.IncrementViews(ctx, id); err != nil {
			return notFound(err, "post not found")
		}
		return c.JSON(dto.Message("view counted"))
	}
}

package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/models"
	"github.com/jeongjingoo/tech/internal/repository"
	"github.com/jeongjingoo/tech/internal/services"
)

// ListSchoolsHandler godoc
// @Summary List schools
// @Tags schools
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.Response{data=[]models.School}
// @Failure 500 {object} dto.Response
// @Router /schools [get]
func ListSchoolsHandler(repo repository.SchoolRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		p := page(c)
		schools, total, err := repo.List(ctx, p)
		if err != nil {
			return err
		}
		return paged(c, schools, total, p)
	}
}

// AllSchoolsHandler godoc
// @Summary List every school
// @Description Unpaginated list used by the map. Optionally filtered by team.
// @Tags schools
// @Produce json
// @Param team query string false "Team name, e.g. 1팀"
// @Success 200 {object} dto.Response{data=[]models.School}
// @Router /schools/all [get]
func AllSchoolsHandler(repo repository.SchoolRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()

		schools, err := repo.All(ctx, strings.TrimSpace(c.Query("team")))
		if err != nil {
			return err
		}
		return c.JSON(dto.WithTotal(schools, int64(len(schools))))
	}
}

// CreateSchoolHandler godoc
// @Summary Create a school
// @Tags schools
// @Accept json
// @Produce json
// @Param body body dto.SchoolCreateRequest true "School"
// @Success 201 {object} dto.Response{data=models.School}
// @Failure 400 {object} dto.Response
// @Router /schools [post]
func CreateSchoolHandler(repo repository.SchoolRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SchoolCreateRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		school := models.School{Data: body.Data.ToModel()}
		if err := repo.Insert(ctx, &school); err != nil {
			return err
		}
		return created(c, school)
	}
}

// UpdateSchoolHandler godoc
// @Summary Replace a school's data
// @Tags schools
// @Accept json
// @Produce json
// @Param body body dto.SchoolUpdateRequest true "School"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /schools [put]
func UpdateSchoolHandler(repo repository.SchoolRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SchoolUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return err
		}
		id, err := targetID(c, body.ID)
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.ReplaceData(ctx, id, body.Data.ToModel()); err != nil {
			return notFound(err, "school not found")
		}
		return c.JSON(dto.Message("school updated"))
	}
}

// UpdateSchoolStatusHandler godoc
// @Summary Change a school's team or completion flag
// @Tags schools
// @Produce json
// @Param id query string true "School id"
// @Param team query string false "New team"
// @Param iscomp query int false "Completion flag (1 = done)"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /schools/update [put]
func UpdateSchoolStatusHandler(repo repository.SchoolRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		var patch models.SchoolPatch
		if team := c.Query("team"); team != "" {
			patch.Team = &team
		}
		if raw := c.Query("iscomp"); raw != "" {
			v := dto.ParseInt(raw)
			patch.IsComp = &v
		}
		// the same fields may come as a JSON body
		if len(c.Body()) > 0 {
			var body dto.SchoolStatusRequest
			if err := c.BodyParser(&body); err == nil {
				if body.Team != nil && patch.Team == nil {
					patch.Team = body.Team
				}
				if body.IsComp != nil && patch.IsComp == nil {
					v := body.IsComp.Int()
					patch.IsComp = &v
				}
			}
		}
		if patch.Empty() {
			return fiber.NewError(fiber.StatusBadRequest, "team or iscomp is required")
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Patch(ctx, id, patch); err != nil {
			return notFound(err, "school not found")
		}
		return c.JSON(dto.Message("school updated"))
	}
}

// DeleteSchoolHandler godoc
// @Summary Delete a school
// @Tags schools
// @Produce json
// @Param id query string true "School id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /schools [delete]
func DeleteSchoolHandler(repo repository.SchoolRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Query("id"))
		if err != nil {
			return err
		}

		ctx, cancel := dbCtx(c)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			return notFound(err, "school not found")
		}
		return c.JSON(dto.Message("school deleted"))
	}
}

// UploadSchoolsHandler godoc
// @Summary Import schools from a spreadsheet
// @Description Rows are matched on division+level+name; matches are updated, the rest inserted.
// @Tags schools
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx or xls workbook"
// @Success 200 {object} dto.Response{data=dto.ImportResult}
// @Failure 400 {object} dto.Response
// @Router /schools/upload [post]
func UploadSchoolsHandler(importer *services.Importer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil || fh == nil {
			return fiber.NewError(fiber.StatusBadRequest, "file is required")
		}
		if !services.SupportedSheet(fh.Filename) {
			return fiber.NewError(fiber.StatusBadRequest, services.ErrUnsupportedFile.Error())
		}

		f, err := fh.Open()
		if err != nil {
			return errors.Wrap(err, "open upload")
		}
		defer f.Close()

		ctx, cancel := importCtx(c)
		defer cancel()

		res, err := importer.ImportFile(ctx, fh.Filename, f)
		if err != nil {
			if errors.Is(err, services.ErrUnsupportedFile) || errors.Is(err, services.ErrEmptySheet) {
				return err
			}
			// unreadable workbook
			return fiber.NewError(fiber.StatusBadRequest, "could not read the spreadsheet")
		}
		resp := dto.Response{Success: true, Data: res, Stats: &res}
		if res.Skipped > 0 {
			resp.Message = fmt.Sprintf("import stopped early, %d rows not processed", res.Skipped)
		}
		return c.JSON(resp)
	}
}

// UploadExcelRowsHandler godoc
// @Summary Insert client-parsed spreadsheet rows
// @Tags schools
// @Accept json
// @Produce json
// @Param body body []map[string]interface{} true "Sheet rows"
// @Success 200 {object} dto.Response{data=[]models.School}
// @Failure 400 {object} dto.Response
// @Router /upload-excel [post]
func UploadExcelRowsHandler(importer *services.Importer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []map[string]any
		if err := c.BodyParser(&rows); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "no rows to save")
		}

		ctx, cancel := importCtx(c)
		defer cancel()

		saved, err := importer.InsertRows(ctx, services.RowsFromJSON(rows))
		if err != nil {
			return err
		}
		return c.JSON(dto.Response{
			Success: true,
			Data:    saved,
			Message: fmt.Sprintf("%d rows saved", len(saved)),
		})
	}
}

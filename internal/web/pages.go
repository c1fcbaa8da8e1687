package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"

	"github.com/jeongjingoo/tech/internal/models"
)

//go:embed templates static
var assets embed.FS

const layout = "layouts/main"

type NavItem struct {
	Path  string
	Label string
}

var nav = []NavItem{
	{"/", "대시보드"},
	{"/schoolmap", "학교 지도"},
	{"/maintenance", "유지보수업체"},
	{"/qna", "Q&A 게시판"},
	{"/calendar", "일정표"},
	{"/technician", "테크매니저"},
	{"/setting/schools", "학교 관리"},
	{"/setting/upload", "데이터 업로드"},
}

type page struct {
	path     string
	template string
	title    string
	resource *Resource
}

var pages = []page{
	{"/", "index", "대시보드", nil},
	{"/schoolmap", "schoolmap", "학교 지도", nil},
	{"/maintenance", "crud", "유지보수업체 목록", &vendorResource},
	{"/qna", "qna", "Q&A 게시판", nil},
	{"/calendar", "calendar", "일정표", nil},
	{"/technician", "crud", "테크매니저 목록", &technicianResource},
	{"/setting/schools", "crud", "학교 관리", &schoolResource},
	{"/setting/upload", "upload", "데이터 관리", nil},
	{"/login", "login", "로그인", nil},
}

type Options struct {
	KakaoAppKey string
}

// Engine loads the embedded page templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Register serves static assets and every page.
func Register(app *fiber.App, opts Options) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(static),
		MaxAge: 3600,
	}))

	mapCfg := NewMapConfig(opts.KakaoAppKey, models.DefaultLat, models.DefaultLon)
	for _, p := range pages {
		app.Get(p.path, render(p, mapCfg))
	}
}

func render(p page, mapCfg MapConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(p.template, fiber.Map{
			"Title":     p.title,
			"Path":      p.path,
			"Nav":       nav,
			"Resource":  p.resource,
			"MapConfig": mapCfg,
			"Teams":     Teams,
		}, layout)
	}
}

package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// deadlineApp reports how far away the store and import deadlines are.
func deadlineApp(mw ...fiber.Handler) *fiber.App {
	app := fiber.New()
	for _, h := range mw {
		app.Use(h)
	}
	app.Get("/", func(c *fiber.Ctx) error {
		ctx, cancel := dbCtx(c)
		defer cancel()
		ictx, icancel := importCtx(c)
		defer icancel()
		store, _ := ctx.Deadline()
		imp, _ := ictx.Deadline()
		return c.JSON(fiber.Map{
			"store":  time.Until(store).Milliseconds(),
			"import": time.Until(imp).Milliseconds(),
		})
	})
	return app
}

func deadlines(t *testing.T, app *fiber.App) (store, imp time.Duration) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	if !assert.NoError(t, err) {
		return 0, 0
	}
	defer resp.Body.Close()
	var out struct {
		Store  int64 `json:"store"`
		Import int64 `json:"import"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return time.Duration(out.Store) * time.Millisecond, time.Duration(out.Import) * time.Millisecond
}

func TestTimeoutsPerApp(t *testing.T) {
	short := deadlineApp(WithTimeouts(Timeouts{Store: time.Second, Import: 2 * time.Second}))
	long := deadlineApp(WithTimeouts(Timeouts{Store: time.Hour, Import: 2 * time.Hour}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store, imp := deadlines(t, short)
			assert.LessOrEqual(t, store, time.Second)
			assert.LessOrEqual(t, imp, 2*time.Second)
			assert.Greater(t, imp, time.Second)
		}()
		go func() {
			defer wg.Done()
			store, imp := deadlines(t, long)
			assert.Greater(t, store, 59*time.Minute)
			assert.Greater(t, imp, time.Hour)
		}()
	}
	wg.Wait()
}

func TestTimeoutsDefaults(t *testing.T) {
	store, imp := deadlines(t, deadlineApp())
	assert.LessOrEqual(t, store, DefaultStoreTimeout)
	assert.Greater(t, store, DefaultStoreTimeout-time.Minute)
	assert.LessOrEqual(t, imp, DefaultImportTimeout)
	assert.Greater(t, imp, DefaultImportTimeout-time.Minute)

	store, imp = deadlines(t, deadlineApp(WithTimeouts(Timeouts{Store: -1})))
	assert.Greater(t, store, DefaultStoreTimeout-time.Minute)
	assert.Greater(t, imp, DefaultImportTimeout-time.Minute)
}

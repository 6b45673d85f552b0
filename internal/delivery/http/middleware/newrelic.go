package middleware

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelic открывает транзакцию на запрос и кладёт её в UserContext,
// чтобы исходящие вызовы провайдеров и Redis попадали в неё сегментами.
func NewRelic(app *newrelic.Application) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if app == nil {
			return c.Next()
		}

		txn := app.StartTransaction(c.Method() + " " + c.Path())
		defer txn.End()

		txn.SetWebRequest(newrelic.WebRequest{
			Header: http.Header(c.GetReqHeaders()),
			URL: &url.URL{
				Scheme:   c.Protocol(),
				Host:     c.Hostname(),
				Path:     c.Path(),
				RawQuery: string(c.Request().URI().QueryString()),
			},
			Method:    c.Method(),
			Transport: newrelic.TransportHTTP,
		})
		c.SetUserContext(newrelic.NewContext(c.UserContext(), txn))

		err := c.Next()
		if err != nil {
			txn.NoticeError(err)
		}

		// после роутинга известен шаблон пути, по нему и группируем
		if route := c.Route(); route != nil && route.Path != "" {
			txn.SetName(c.Method() + " " + route.Path)
		}
		txn.SetWebResponse(nil).WriteHeader(c.Response().StatusCode())

		return err
	}
}

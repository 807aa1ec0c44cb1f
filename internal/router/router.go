package router

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cardbank/internal/handler"
)

// RegisterBank wires the card bank API routes and middleware.
func RegisterBank(
	e *echo.Echo,
	accountHandler *handler.AccountHandler,
	creditCardHandler *handler.CreditCardHandler,
	debitCardHandler *handler.DebitCardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = NewValidator()

	e.GET("/health", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Bank account routes
	api.GET("/bank", accountHandler.List)
	api.GET("/bank/:id", accountHandler.Get)
	api.POST("/bank", accountHandler.Create)
	api.PATCH("/bank/:id", accountHandler.Update)
	api.DELETE("/bank/:id", accountHandler.Delete)

	// Credit card routes
	api.GET("/credit_card", creditCardHandler.List)
	api.GET("/credit_card/:id", creditCardHandler.Get)
	api.POST("/credit_card", creditCardHandler.Create)
	api.PATCH("/credit_card/:id", creditCardHandler.Update)
	api.DELETE("/credit_card/:id", creditCardHandler.Delete)

	// Debit card routes
	api.GET("/debit_card", debitCardHandler.List)
	api.GET("/debit_card/:id", debitCardHandler.Get)
	api.POST("/debit_card", debitCardHandler.Create)
	api.PATCH("/debit_card/:id", debitCardHandler.Update)
	api.DELETE("/debit_card/:id", debitCardHandler.Delete)
}

// RegisterPaymentMethod wires the payment method API routes and
// middleware. The record id and owning user travel as query parameters,
// not path segments.
func RegisterPaymentMethod(e *echo.Echo, paymentMethodHandler *handler.PaymentMethodHandler) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = NewValidator()

	e.GET("/health", handler.Health)

	e.POST("/payment_method", paymentMethodHandler.Create)
	e.GET("/payment_method", paymentMethodHandler.List)
	e.PATCH("/payment_method", paymentMethodHandler.Update)
	e.DELETE("/payment_method", paymentMethodHandler.Delete)
}

var expirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// NewValidator builds the request validator shared by both services,
// including the MM/YYYY expiration rule.
func NewValidator() echo.Validator {
	v := validator.New()
	_ = v.RegisterValidation("mmyyyy", func(fl validator.FieldLevel) bool {
		return expirationPattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

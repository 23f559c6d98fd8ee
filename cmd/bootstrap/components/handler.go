package components

import (
	"payment-intention-service/internal/handler"
	"payment-intention-service/internal/handler/api"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// HandlerModule builds a bare engine; NewRouter installs every middleware itself.
var HandlerModule = fx.Module("handler",
	fx.Provide(
		func() *gin.Engine { return gin.New() },
		api.NewPaymentIntentionHandler,
	),
	fx.Invoke(handler.NewRouter),
)

package api

import (
	"net/http"

	"payment-intention-service/internal/domain/payment"
	reqdto "payment-intention-service/internal/handler/dto/request"
	resdto "payment-intention-service/internal/handler/dto/response"
	"payment-intention-service/internal/handler/httperr"
	"payment-intention-service/internal/pkg/errs"
	"payment-intention-service/internal/usecase/commands"
	"payment-intention-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentIntentionHandler struct {
	cmds commands.PaymentIntentionCommands
	q    queries.PaymentIntentionQueries
}

func NewPaymentIntentionHandler(cmds commands.PaymentIntentionCommands, q queries.PaymentIntentionQueries) *PaymentIntentionHandler {
	return &PaymentIntentionHandler{cmds: cmds, q: q}
}

// @Summary Create payment intention
// @Description Validate and record a payment intention between two users
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentIntentionRequest true "Create payment intention request"
// @Success 201 {object} resdto.PaymentIntentionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentIntentionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePaymentIntentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithFailure(c, err)
		return
	}

	c.Header("Location", "/api/payments/"+created.ID())
	c.JSON(http.StatusCreated, resdto.FromPaymentIntention(created))
}

// @Summary Get payment intention
// @Description Get a payment intention by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment intention ID"
// @Success 200 {object} resdto.PaymentIntentionResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentIntentionHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrPaymentIntentionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment intention not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payment intention", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentIntentionView(view))
}

// abortWithFailure maps every failure kind to a status; anything unclassified is a 500.
func abortWithFailure(c *gin.Context, err error) {
	var status int
	switch payment.Classify(err) {
	case payment.KindOutOfWindowValue, payment.KindMaxLimitReached, payment.KindSameOrigin:
		status = http.StatusBadRequest
	case payment.KindUserNotFound:
		status = http.StatusNotFound
	case payment.KindDuplicateIntention:
		status = http.StatusConflict
	case payment.KindInternal:
		httperr.AbortWithCode(c, http.StatusInternalServerError, err, payment.KindInternal.String(), "Internal server error", nil)
		return
	default:
		status = http.StatusInternalServerError
	}

	f, _ := payment.AsFailure(err)
	httperr.AbortWithCode(c, status, err, f.Code(), f.Message, resdto.FailureDetail(f))
}

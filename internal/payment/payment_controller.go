package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

type PaymentController struct {
	service *PaymentService
}

func NewPaymentController(service *PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// CreateMethod godoc
// @Summary      Store a payment method
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        method body CreateMethodRequest true "Method details"
// @Success      201 {object} PaymentMethod
// @Router       /payments/methods [post]
func (pc *PaymentController) CreateMethod(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	m, err := pc.service.CreateMethod(userID, req.MethodType, req.Details)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GetMethods godoc
// @Summary      List own payment methods
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} PaymentMethod
// @Router       /payments/methods [get]
func (pc *PaymentController) GetMethods(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	methods, err := pc.service.GetUserMethods(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

// DeleteMethod godoc
// @Summary      Remove own payment method
// @Tags         Payments
// @Security     BearerAuth
// @Param        id path int true "Method ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /payments/methods/{id} [delete]
func (pc *PaymentController) DeleteMethod(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid method ID")
		return
	}

	if err := pc.service.DeleteMethod(id, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePayment godoc
// @Summary      Record a payment
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payment body CreatePaymentRequest true "Payment details"
// @Success      201 {object} Payment
// @Failure      404 {object} responses.ErrorResponse
// @Router       /payments [post]
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	p, err := pc.service.CreatePayment(userID, req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetPayment godoc
// @Summary      Get a payment by id
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} Payment
// @Failure      404 {object} responses.ErrorResponse
// @Router       /payments/{id} [get]
func (pc *PaymentController) GetPayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid payment ID")
		return
	}

	p, err := pc.service.GetPayment(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetPayerPayments godoc
// @Summary      List payments made by the authenticated user
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Payment
// @Router       /payments/payer [get]
func (pc *PaymentController) GetPayerPayments(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	payments, err := pc.service.GetPayerPayments(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetReceiverPayments godoc
// @Summary      List payments received by the authenticated user
// @Tags         Payments
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Payment
// @Router       /payments/receiver [get]
func (pc *PaymentController) GetReceiverPayments(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	payments, err := pc.service.GetReceiverPayments(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreateIntent godoc
// @Summary      Open a payment intent for an arena entry fee
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        intent body CreateIntentRequest true "Arena to pay for"
// @Success      201 {object} IntentResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /payments/create [post]
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	resp, err := pc.service.CreateIntent(userID, req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// VerifyIntent godoc
// @Summary      Verify a payment intent and join the arena
// @Tags         Payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        intent body VerifyPaymentRequest true "Intent to verify"
// @Success      200 {object} Payment
// @Failure      400 {object} responses.ErrorResponse
// @Router       /payments/verify [post]
func (pc *PaymentController) VerifyIntent(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	p, err := pc.service.VerifyIntent(userID, req.IntentID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}

package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/careerledger/internal/auth"
	"github.com/tdhoang/careerledger/internal/controller"
	"github.com/tdhoang/careerledger/internal/dto"
	"github.com/tdhoang/careerledger/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
	advisorService    service.AdvisorService
	tokens            *auth.TokenService
}

func NewAssessmentController(as service.AssessmentService, adv service.AdvisorService, tokens *auth.TokenService) *AssessmentController {
	return &AssessmentController{
		assessmentService: as,
		advisorService:    adv,
		tokens:            tokens,
	}
}

// IssueToken godoc
// @Summary Issue a demo bearer token for a submitter address
// @Description Identity is self-asserted, mirroring the original wallet-based demo. Replace with real auth before any serious deployment.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Submitter address"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/token [post]
func (c *AssessmentController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	token, err := c.tokens.Sign(req.Address)
	if err != nil {
		log.Error().Err(err).Msg("IssueToken: failed to sign token")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to issue token"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Submit godoc
// @Summary Submit a new career assessment
// @Description Stores the three preference signals under the configured commitment scheme and derives the guidance score. Requires the minimum fee.
// @Tags Assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAssessmentRequest true "Signals and payment"
// @Success 201 {object} dto.SubmitAssessmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 402 {object} dto.ErrorResponse "Payment below minimum fee"
// @Router /assessments [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	var req dto.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.assessmentService.Submit(caller, req)
	if err != nil {
		log.Warn().Err(err).Str("submitter", caller).Msg("Submit rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// RequestReveal godoc
// @Summary Request reveal of an assessment's guidance score
// @Description One-shot transition; only the submitter may request, and only once.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentStatusResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Reveal already requested"
// @Router /assessments/{id}/reveal [post]
func (c *AssessmentController) RequestReveal(ctx *gin.Context) {
	caller, id, ok := c.callerAndID(ctx)
	if !ok {
		return
	}
	if err := c.assessmentService.RequestReveal(caller, id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	status, err := c.assessmentService.Status(caller, id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

// ReadGuidance godoc
// @Summary Read the guidance score of an assessment
// @Description Returns the score derived and frozen at submission. In two-phase mode the reveal must have been requested first.
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.GuidanceResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Reveal not yet requested"
// @Router /assessments/{id}/guidance [get]
func (c *AssessmentController) ReadGuidance(ctx *gin.Context) {
	caller, id, ok := c.callerAndID(ctx)
	if !ok {
		return
	}
	resp, err := c.assessmentService.ReadGuidance(caller, id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Advice godoc
// @Summary Generate a career-guidance narrative for a revealed assessment
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AdviceResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /assessments/{id}/advice [get]
func (c *AssessmentController) Advice(ctx *gin.Context) {
	caller, id, ok := c.callerAndID(ctx)
	if !ok {
		return
	}
	resp, err := c.advisorService.AdviceFor(ctx.Request.Context(), caller, id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Status godoc
// @Summary Read reveal flag and submission timestamp of an assessment
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentStatusResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/status [get]
func (c *AssessmentController) Status(ctx *gin.Context) {
	caller, id, ok := c.callerAndID(ctx)
	if !ok {
		return
	}
	resp, err := c.assessmentService.Status(caller, id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MyAssessments godoc
// @Summary List the caller's assessment ids in submission order
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MyAssessmentsResponse
// @Router /my/assessments [get]
func (c *AssessmentController) MyAssessments(ctx *gin.Context) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}
	resp, err := c.assessmentService.MyAssessments(caller)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PublicStats godoc
// @Summary Public ledger stats
// @Description Total assessment count plus the fee and flavor configuration.
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (c *AssessmentController) PublicStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.assessmentService.Stats())
}

func (c *AssessmentController) callerAndID(ctx *gin.Context) (string, uint64, bool) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return "", 0, false
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assessment ID format"})
		return "", 0, false
	}
	return caller, id, true
}

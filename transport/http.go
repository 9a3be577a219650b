package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	userapp "github.com/muhammadheryan/user-registration/application/user"
	"github.com/muhammadheryan/user-registration/constant"
	"github.com/muhammadheryan/user-registration/model"
	"github.com/muhammadheryan/user-registration/utils/errors"
	"github.com/muhammadheryan/user-registration/utils/sanitizer"
	validatorx "github.com/muhammadheryan/user-registration/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp userapp.UserApp
}

func NewTransport(UserApp userapp.UserApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp: UserApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Health checks
	mux.HandleFunc("/", rh.Root).Methods(http.MethodGet)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/api/users/register", rh.Register).Methods(http.MethodPost, http.MethodOptions)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(CORSMiddleware())

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user with validated personal and credential data
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/users/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "malformed request body"))
		return
	}

	// Sanitize before the struct-tag pass so padded but valid input is
	// accepted; the application layer re-runs the same normalization.
	sanitizeRequest(&req)

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Root handler
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *RestHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "User Registration Service is running"})
}

// Health handler
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func sanitizeRequest(req *model.RegisterRequest) {
	data := sanitizer.SanitizeUserData(map[string]string{
		"firstname":       req.Firstname,
		"lastname":        req.Lastname,
		"email":           req.Email,
		"username":        req.Username,
		"password":        req.Password,
		"confirmpassword": req.ConfirmPassword,
		"countrycode":     req.CountryCode,
		"mobilenumber":    req.MobileNumber,
	})

	req.Firstname = data["firstname"]
	req.Lastname = data["lastname"]
	req.Email = data["email"]
	req.Username = data["username"]
	req.Password = data["password"]
	req.ConfirmPassword = data["confirmpassword"]
	req.CountryCode = data["countrycode"]
	req.MobileNumber = data["mobilenumber"]
}

// ErrorResponse is the envelope for every failed request
type ErrorResponse struct {
	Message   string    `json:"message"`
	ErrorInfo ErrorInfo `json:"errorInfo"`
}

type ErrorInfo struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, body any) {
	writeJSON(w, constant.ErrorTypeHTTPCode[constant.Successful], body)
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Message:   constant.MessageInternalError,
			ErrorInfo: ErrorInfo{Detail: err.Error()},
		})
		return
	}

	message := constant.MessageValidationError
	if ce.ErrorHTTPCode() >= http.StatusInternalServerError {
		message = constant.MessageInternalError
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Message:   message,
		ErrorInfo: ErrorInfo{Detail: ce.Detail()},
	})
}

package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/muhammadheryan/user-registration/constant"
	"github.com/muhammadheryan/user-registration/model"
	userrepo "github.com/muhammadheryan/user-registration/repository/user"
	utilsContext "github.com/muhammadheryan/user-registration/utils/context"
	"github.com/muhammadheryan/user-registration/utils/errors"
	"github.com/muhammadheryan/user-registration/utils/logger"
	"github.com/muhammadheryan/user-registration/utils/sanitizer"
	validatorx "github.com/muhammadheryan/user-registration/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
}

type UserAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		userRepo: userRepo,
	}
}

// Register runs the registration pipeline: sanitize, re-validate,
// strength-check, uniqueness pre-check, hash, insert. Each step's failure
// terminates the pipeline; no state survives the request.
func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
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

	// Re-validate the sanitized fields even though the transport layer ran
	// the struct tags; transport coercion must not bypass the field rules.
	if fieldErrs := validatorx.ValidateRegistration(data); len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation,
			fmt.Sprintf("%s: %s", first.Field, first.Reason))
	}

	strength := validatorx.CheckPasswordStrength(data["password"])
	if !strength.IsStrong {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation,
			"Weak password: "+strings.Join(strength.Feedback, ", "))
	}

	// Uniqueness pre-check in fixed order: username, email, full mobile.
	// Simultaneous collisions report the earliest field in this order.
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Username: data["username"]})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", s.errFields(ctx, err)...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrUsernameExists)
	}

	existing, err = s.userRepo.Get(ctx, &model.UserFilter{Email: data["email"]})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", s.errFields(ctx, err)...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	fullMobile := data["countrycode"] + data["mobilenumber"]
	existing, err = s.userRepo.Get(ctx, &model.UserFilter{FullMobile: fullMobile})
	if err != nil {
		logger.Error("[Register] err userRepo.Get full mobile", s.errFields(ctx, err)...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrMobileExists)
	}

	// Fresh salt per call: identical passwords hash differently
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data["password"]), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", s.errFields(ctx, err)...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Firstname:    data["firstname"],
		Lastname:     data["lastname"],
		Email:        data["email"],
		Username:     data["username"],
		PasswordHash: string(hashedPassword),
		CountryCode:  data["countrycode"],
		MobileNumber: data["mobilenumber"],
		FullMobile:   fullMobile,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		// A race lost against the pre-check: a concurrent registration won
		// the unique constraint between steps. Conflict, not retried.
		if stderrors.Is(err, userrepo.ErrDuplicateKey) {
			return nil, errors.SetCustomError(constant.ErrDuplicateUser)
		}
		logger.Error("[Register] err userRepo.Create", s.errFields(ctx, err)...)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		ID:       userEntity.ID,
		Username: userEntity.Username,
		Email:    userEntity.Email,
		Message:  constant.MessageUserCreated,
	}, nil
}

func (s *UserAppImpl) errFields(ctx context.Context, err error) []zap.Field {
	fields := []zap.Field{zap.String("error", err.Error())}
	if requestID, ok := utilsContext.GetRequestID(ctx); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}

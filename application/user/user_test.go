package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/user-registration/application/user"
	"github.com/muhammadheryan/user-registration/constant"
	usermocks "github.com/muhammadheryan/user-registration/mocks/repository/user"
	"github.com/muhammadheryan/user-registration/model"
	userrepo "github.com/muhammadheryan/user-registration/repository/user"
	cerr "github.com/muhammadheryan/user-registration/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func validRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Firstname:       "John",
		Lastname:        "Doe",
		Email:           "john.doe@example.com",
		Username:        "johndoe123",
		Password:        "SecurePass1!",
		ConfirmPassword: "SecurePass1!",
		CountryCode:     "+1",
		MobileNumber:    "1234567890",
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		want       *model.RegisterResponse
		wantErr    bool
		errCode    constant.ErrorType
		wantDetail string
	}{
		{
			name: "success: register new user",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john.doe@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{FullMobile: "+11234567890"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Firstname == "John" &&
							ent.Lastname == "Doe" &&
							ent.Email == "john.doe@example.com" &&
							ent.Username == "johndoe123" &&
							ent.FullMobile == "+11234567890" &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "SecurePass1!"
					})).
					Return(&model.UserEntity{
						ID:         1,
						Firstname:  "John",
						Lastname:   "Doe",
						Email:      "john.doe@example.com",
						Username:   "johndoe123",
						FullMobile: "+11234567890",
						CreatedAt:  time.Now(),
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				ID:       1,
				Username: "johndoe123",
				Email:    "john.doe@example.com",
				Message:  "User created successfully",
			},
			wantErr: false,
		},
		{
			name: "success: input is sanitized before checks and insert",
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Firstname:       " john ",
					Lastname:        "  DOE ",
					Email:           "John.Doe@Example.COM",
					Username:        "JohnDoe123",
					Password:        "SecurePass1!",
					ConfirmPassword: "SecurePass1!",
					CountryCode:     " +44 ",
					MobileNumber:    " 7123456789012 ",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john.doe@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{FullMobile: "+447123456789012"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Firstname == "John" &&
							ent.Lastname == "Doe" &&
							ent.Email == "john.doe@example.com" &&
							ent.Username == "johndoe123" &&
							ent.CountryCode == "+44" &&
							ent.MobileNumber == "7123456789012" &&
							ent.FullMobile == "+447123456789012"
					})).
					Return(&model.UserEntity{
						ID:       2,
						Email:    "john.doe@example.com",
						Username: "johndoe123",
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				ID:       2,
				Username: "johndoe123",
				Email:    "john.doe@example.com",
				Message:  "User created successfully",
			},
			wantErr: false,
		},
		{
			name: "error: firstname with digits fails re-validation",
			args: args{
				ctx: context.Background(),
				req: func() *model.RegisterRequest {
					r := validRequest()
					r.Firstname = "J0hn"
					return r
				}(),
			},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantDetail: "firstname",
		},
		{
			name: "error: password and confirm password mismatch",
			args: args{
				ctx: context.Background(),
				req: func() *model.RegisterRequest {
					r := validRequest()
					r.ConfirmPassword = "SecurePass2!"
					return r
				}(),
			},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantDetail: "confirmpassword",
		},
		{
			name: "error: weak password rejected with feedback",
			args: args{
				ctx: context.Background(),
				req: func() *model.RegisterRequest {
					// passes the shape rule but scores 4/6 (no uppercase, < 12 chars)
					r := validRequest()
					r.Password = "abcdefg1!"
					r.ConfirmPassword = "abcdefg1!"
					return r
				}(),
			},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantDetail: "Weak password",
		},
		{
			name: "error: username already exists",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(&model.UserEntity{ID: 1, Username: "johndoe123"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUsernameExists,
		},
		{
			name: "error: email already registered",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john.doe@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "john.doe@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: mobile already registered",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john.doe@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{FullMobile: "+11234567890"}).
					Return(&model.UserEntity{ID: 1, FullMobile: "+11234567890"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrMobileExists,
		},
		{
			name: "error: duplicate detected at insert time",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john.doe@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{FullMobile: "+11234567890"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, userrepo.ErrDuplicateKey).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateUser,
		},
		{
			name: "error: repository Get returns error",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			args: args{
				ctx: context.Background(),
				req: validRequest(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "john.doe@example.com"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{FullMobile: "+11234567890"}).
					Return(nil, nil).
					Once()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo: usermocks.NewUserRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.userRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.wantDetail != "" && !strings.Contains(ce.Detail(), tt.wantDetail) {
					t.Fatalf("error detail = %q, want it to contain %q", ce.Detail(), tt.wantDetail)
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Conflicting on every fingerprint field must still report username first.
func TestUserApp_Register_ConflictOrdering(t *testing.T) {
	repo := usermocks.NewUserRepository(t)
	repo.
		On("Get", mock.Anything, &model.UserFilter{Username: "johndoe123"}).
		Return(&model.UserEntity{ID: 1, Username: "johndoe123", Email: "john.doe@example.com"}, nil).
		Once()

	app := appuser.NewUserApp(repo)

	_, err := app.Register(context.Background(), validRequest())
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUsernameExists] {
		t.Fatalf("error code = %s, want username conflict", ce.ErrorCode())
	}
	// email and mobile must never have been queried
	repo.AssertNumberOfCalls(t, "Get", 1)
}

// Two registrations with the same password must store different salted
// hashes, both of which verify against the plaintext.
func TestUserApp_Register_HashSaltedPerCall(t *testing.T) {
	var hashes []string

	repo := usermocks.NewUserRepository(t)
	repo.On("Get", mock.Anything, mock.AnythingOfType("*model.UserFilter")).Return(nil, nil)
	repo.
		On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
		Return(func(_ context.Context, ent *model.UserEntity) (*model.UserEntity, error) {
			hashes = append(hashes, ent.PasswordHash)
			ent.ID = uint64(len(hashes))
			return ent, nil
		})

	app := appuser.NewUserApp(repo)

	for i := 0; i < 2; i++ {
		req := validRequest()
		req.Username = "johndoe12" + string(rune('3'+i))
		req.Email = "john" + string(rune('0'+i)) + "@example.com"
		req.MobileNumber = "123456789" + string(rune('0'+i))
		if _, err := app.Register(context.Background(), req); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	if len(hashes) != 2 {
		t.Fatalf("got %d hashes, want 2", len(hashes))
	}
	if hashes[0] == hashes[1] {
		t.Fatal("identical passwords produced identical hashes, salt not applied")
	}
	for _, h := range hashes {
		if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("SecurePass1!")); err != nil {
			t.Fatalf("hash does not verify against original password: %v", err)
		}
	}
}

// The success response must never leak the plaintext password or its hash.
func TestUserApp_Register_ResponseOmitsCredential(t *testing.T) {
	repo := usermocks.NewUserRepository(t)
	repo.On("Get", mock.Anything, mock.AnythingOfType("*model.UserFilter")).Return(nil, nil)

	var storedHash string
	repo.
		On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
		Return(func(_ context.Context, ent *model.UserEntity) (*model.UserEntity, error) {
			storedHash = ent.PasswordHash
			ent.ID = 7
			return ent, nil
		}).
		Once()

	app := appuser.NewUserApp(repo)

	res, err := app.Register(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	if strings.Contains(string(body), "SecurePass1!") {
		t.Fatal("response contains the plaintext password")
	}
	if storedHash != "" && strings.Contains(string(body), storedHash) {
		t.Fatal("response contains the password hash")
	}
}

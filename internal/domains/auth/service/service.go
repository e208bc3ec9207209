package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	auditModel "hotelier/internal/domains/auditlog/model"
	auditDto "hotelier/internal/domains/auditlog/model/dto"
	auditService "hotelier/internal/domains/auditlog/service"
	"hotelier/internal/domains/auth/model/dto"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepository "hotelier/internal/domains/guest/repository"
	userModel "hotelier/internal/domains/user/model"
	userRepository "hotelier/internal/domains/user/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/password"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	userRepo  userRepository.User
	guestRepo guestRepository.Guest
	db        *postgres.Connection
	jwt       jwt.JWT
	cfg       *config.Config
	otel      otel.Otel
	auditSvc  auditService.AuditLog
}

func New(
	userRepo userRepository.User,
	guestRepo guestRepository.Guest,
	db *postgres.Connection,
	jwt jwt.JWT,
	cfg *config.Config,
	otel otel.Otel,
	auditSvc auditService.AuditLog,
) Auth {
	return &serviceImpl{
		userRepo:  userRepo,
		guestRepo: guestRepo,
		db:        db,
		jwt:       jwt,
		cfg:       cfg,
		otel:      otel,
		auditSvc:  auditSvc,
	}
}

func filterByEmail(email, fieldEmail, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    fieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// Register creates a user account and its guest profile in one transaction.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exist, err := s.userRepo.Exist(ctx, filterByEmail(email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user existence")

		return res, fmt.Errorf("failed to check user existence: %w", err)
	}

	if exist {
		return res, failure.Conflict("email is already registered") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	now := timezone.Now()
	userID := uuid.NewString()

	user := userModel.User{
		ID:       userID,
		Email:    email,
		Password: hashed,
		Role:     constant.RoleGuest,
		FullName: strings.TrimSpace(req.FirstName + " " + req.LastName),
		Phone:    req.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	guest := guestModel.Guest{
		ID:        uuid.NewString(),
		UserID:    &userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Phone:     req.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = s.userRepo.InsertTx(ctx, tx, user); err != nil {
		log.Error().Err(err).Msg("failed to insert user")

		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
		}

		return res, fmt.Errorf("failed to insert user: %w", err)
	}

	if err = s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
		log.Error().Err(err).Msg("failed to insert guest")

		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
		}

		return res, fmt.Errorf("failed to insert guest: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: userModel.TableName,
		RecordID:  user.ID,
		Action:    auditModel.ActionCreate,
		NewValues: map[string]any{userModel.FieldEmail: user.Email, userModel.FieldRole: user.Role},
	})

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: guestModel.TableName,
		RecordID:  guest.ID,
		Action:    auditModel.ActionCreate,
		NewValues: map[string]any{guestModel.FieldEmail: guest.Email, guestModel.FieldUserID: userID},
	})

	res = dto.RegisterResponse{
		UserID:  user.ID,
		GuestID: guest.ID,
		Email:   user.Email,
		Role:    user.Role,
	}

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.Get(ctx, filterByEmail(email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	if !user.Active {
		return res, failure.Unauthorized("account is deactivated") // nolint:wrapcheck
	}

	pair, err := s.jwt.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	// Login timestamps are best effort, a failed write must not block the login.
	go func() {
		c := context.WithoutCancel(ctx)

		updatedFields := map[string]any{
			userModel.FieldLastLogin: timezone.Now(),
		}

		if err := s.userRepo.Update(c, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("failed to record last login")
		}
	}()

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	pair, err := s.jwt.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return failure.Unauthorized("missing authenticated user") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.OldPassword, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return failure.Unauthorized("old password does not match") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	updatedFields := map[string]any{
		userModel.FieldPassword:  hashed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: userModel.TableName,
		RecordID:  userID,
		Action:    auditModel.ActionUpdate,
		NewValues: map[string]any{userModel.FieldPassword: "changed"},
	})

	return nil
}

package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	auditModel "hotelier/internal/domains/auditlog/model"
	auditDto "hotelier/internal/domains/auditlog/model/dto"
	auditService "hotelier/internal/domains/auditlog/service"
	"hotelier/internal/domains/payment/model"
	"hotelier/internal/domains/payment/model/dto"
	"hotelier/internal/domains/payment/repository"
	reservationModel "hotelier/internal/domains/reservation/model"
	reservationRepository "hotelier/internal/domains/reservation/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPayment    = "payment:get"
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) error
	Refund(ctx context.Context, req dto.RefundPaymentRequest, id string) error
}

type serviceImpl struct {
	repo            repository.Payment
	reservationRepo reservationRepository.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	auditSvc        auditService.AuditLog
}

func New(
	repo repository.Payment,
	reservationRepo reservationRepository.Reservation,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	auditSvc auditService.AuditLog,
) Payment {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		auditSvc:        auditSvc,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(req.ReservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status == reservationModel.StatusCancelled {
		return res, failure.Conflict("cannot take a payment for a cancelled reservation") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	payment := req.ToModel(actor)
	payment.GuestID = reservation.GuestID
	payment.GuestFirstName = reservation.GuestFirstName
	payment.GuestLastName = reservation.GuestLastName

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to insert payment")

		return res, fmt.Errorf("failed to insert payment: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: model.TableName,
		RecordID:  payment.ID,
		Action:    auditModel.ActionCreate,
		NewValues: payment,
	})

	res.FromModel(payment)

	s.invalidate(ctx, payment.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment")

		return res, nil
	}

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment to cache")
		}
	}()

	return res, nil
}

// UpdateStatus settles a pending payment. Only pending payments can move, and
// only to completed or failed. Refund states are reached through Refund.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	payment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if payment.Status != model.StatusPending {
		return failure.Conflict(fmt.Sprintf("cannot transition payment from %s to %s", payment.Status, req.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if req.Status == model.StatusCompleted {
		updatedFields[model.FieldPaidAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: model.TableName,
		RecordID:  id,
		Action:    auditModel.ActionUpdate,
		OldValues: map[string]any{model.FieldStatus: payment.Status},
		NewValues: map[string]any{model.FieldStatus: req.Status},
	})

	s.invalidate(ctx, id)

	return nil
}

// Refund returns part or all of a completed payment. A full refund moves the
// payment to refunded, a partial one to partially_refunded. The cumulative
// refunded amount can never exceed the amount paid.
func (s *serviceImpl) Refund(ctx context.Context, req dto.RefundPaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	payment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if payment.Status != model.StatusCompleted && payment.Status != model.StatusPartiallyRefunded {
		return failure.Conflict(fmt.Sprintf("cannot refund a payment in %s status", payment.Status)) // nolint:wrapcheck
	}

	remaining := payment.RemainingBalance()
	if req.Amount > remaining {
		return failure.BadRequestFromString(fmt.Sprintf("refund amount exceeds remaining balance of %d", remaining)) // nolint:wrapcheck
	}

	refundedAmount := payment.RefundedAmount + req.Amount

	status := model.StatusPartiallyRefunded
	if refundedAmount == payment.Amount {
		status = model.StatusRefunded
	}

	updatedFields := map[string]any{
		model.FieldRefundedAmount: refundedAmount,
		model.FieldStatus:         status,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  actor,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to refund payment")

		return fmt.Errorf("failed to refund payment: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: model.TableName,
		RecordID:  id,
		Action:    auditModel.ActionUpdate,
		OldValues: map[string]any{model.FieldStatus: payment.Status, model.FieldRefundedAmount: payment.RefundedAmount},
		NewValues: map[string]any{model.FieldStatus: status, model.FieldRefundedAmount: refundedAmount},
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
	}()
}

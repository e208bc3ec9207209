package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	auditModel "hotelier/internal/domains/auditlog/model"
	auditDto "hotelier/internal/domains/auditlog/model/dto"
	auditService "hotelier/internal/domains/auditlog/service"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepository "hotelier/internal/domains/guest/repository"
	"hotelier/internal/domains/reservation/model"
	"hotelier/internal/domains/reservation/model/dto"
	"hotelier/internal/domains/reservation/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepository "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	guestRepo guestRepository.Guest
	roomRepo  roomRepository.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	auditSvc  auditService.AuditLog
}

func New(
	repo repository.Reservation,
	guestRepo guestRepository.Guest,
	roomRepo roomRepository.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	auditSvc auditService.AuditLog,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		auditSvc:  auditSvc,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString("dates must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status == roomModel.StatusMaintenance || room.Status == roomModel.StatusOutOfService {
		return res, failure.Conflict("room is not available for booking") // nolint:wrapcheck
	}

	overlap, err := s.repo.ExistOverlapping(ctx, req.RoomID, checkIn, checkOut, constant.Empty)
	if err != nil {
		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if overlap {
		return res, failure.Conflict("room is already reserved for the selected dates") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	reservation := req.ToModel(actor, checkIn, checkOut, nights*room.BasePrice)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, fmt.Errorf("failed to insert reservation: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: model.TableName,
		RecordID:  reservation.ID,
		Action:    auditModel.ActionCreate,
		NewValues: reservation,
	})

	reservation.RoomNumber = room.Number
	reservation.GuestFirstName = guest.FirstName
	reservation.GuestLastName = guest.LastName
	res.FromModel(reservation)

	s.invalidate(ctx, reservation.ID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update reschedules or moves a reservation while it is still pending or
// confirmed. Dates and room are revalidated against overlapping stays.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status != model.StatusPending && reservation.Status != model.StatusConfirmed {
		return failure.Conflict("only pending or confirmed reservations can be modified") // nolint:wrapcheck
	}

	checkIn := reservation.CheckInDate
	checkOut := reservation.CheckOutDate
	roomID := reservation.RoomID

	if req.CheckInDate != constant.Empty {
		checkIn, err = time.Parse(constant.DayFormat, req.CheckInDate)
		if err != nil {
			return failure.BadRequestFromString("check_in_date must use the YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if req.CheckOutDate != constant.Empty {
		checkOut, err = time.Parse(constant.DayFormat, req.CheckOutDate)
		if err != nil {
			return failure.BadRequestFromString("check_out_date must use the YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if !checkOut.After(checkIn) {
		return failure.BadRequestFromString("check_out_date must be after check_in_date") // nolint:wrapcheck
	}

	if req.RoomID != constant.Empty {
		roomID = req.RoomID
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	overlap, err := s.repo.ExistOverlapping(ctx, roomID, checkIn, checkOut, id)
	if err != nil {
		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if overlap {
		return failure.Conflict("room is already reserved for the selected dates") // nolint:wrapcheck
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)

	updatedFields := map[string]any{
		model.FieldRoomID:        roomID,
		model.FieldCheckInDate:   checkIn,
		model.FieldCheckOutDate:  checkOut,
		model.FieldTotalAmount:   nights * room.BasePrice,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if req.Notes != nil {
		updatedFields[model.FieldNotes] = req.Notes
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: model.TableName,
		RecordID:  id,
		Action:    auditModel.ActionUpdate,
		OldValues: reservation,
		NewValues: updatedFields,
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !model.CanTransition(reservation.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot transition reservation from %s to %s", reservation.Status, req.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	s.updateRoomStatus(ctx, reservation.RoomID, req.Status, actor)

	s.auditSvc.Record(ctx, auditDto.RecordEntry{
		TableName: model.TableName,
		RecordID:  id,
		Action:    auditModel.ActionUpdate,
		OldValues: map[string]any{model.FieldStatus: reservation.Status},
		NewValues: map[string]any{model.FieldStatus: req.Status},
	})

	s.invalidate(ctx, id)

	return nil
}

// updateRoomStatus mirrors the stay lifecycle onto the room: occupied while a
// guest is checked in, available again afterwards. Failures are logged only,
// the reservation transition already committed.
func (s *serviceImpl) updateRoomStatus(ctx context.Context, roomID, reservationStatus, actor string) {
	var roomStatus string

	switch reservationStatus {
	case model.StatusCheckedIn:
		roomStatus = roomModel.StatusOccupied
	case model.StatusCheckedOut:
		roomStatus = roomModel.StatusAvailable
	default:
		return
	}

	updatedFields := map[string]any{
		roomModel.FieldStatus:    roomStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err := s.roomRepo.Update(ctx, updatedFields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to sync room status")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

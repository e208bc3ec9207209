package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/auditlog/model/dto"
	"hotelier/internal/domains/auditlog/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"

	"github.com/rs/zerolog/log"
)

type AuditLog interface {
	Record(ctx context.Context, entry dto.RecordEntry)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
}

type serviceImpl struct {
	repo     repository.AuditLog
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.AuditLog, cfg *config.Config, otel otel.Otel, producer kafka.Producer) AuditLog {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		otel:     otel,
		producer: producer,
	}
}

// Record persists an audit entry and, when the event stream is enabled,
// publishes it to Kafka. Failures are logged, never propagated, so a broken
// audit pipeline cannot fail the business operation it describes.
func (s *serviceImpl) Record(ctx context.Context, entry dto.RecordEntry) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	auditLog := entry.ToModel(actor)

	if err := s.repo.Insert(ctx, auditLog); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).
			Str("table", entry.TableName).
			Str("record_id", entry.RecordID).
			Msg("failed to persist audit log")

		return
	}

	if !s.cfg.Event.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   auditLog.RecordID,
			Value: auditLog,
		}

		if err := s.producer.SendMessages(c, s.cfg.Event.Kafka.Topic.AuditLogs, message); err != nil {
			log.Error().Err(err).Str("record_id", auditLog.RecordID).Msg("failed to publish audit event")
		}
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

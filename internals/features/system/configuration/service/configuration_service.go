// file: internals/features/system/configuration/service/configuration_service.go
package service

import (
	"context"
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academia_backend/internals/configs"
	"academia_backend/internals/constants"
	dto "academia_backend/internals/features/system/configuration/dto"
	model "academia_backend/internals/features/system/configuration/model"
	helper "academia_backend/internals/helpers"
)

const singletonKey = "global"

// ConfigurationService es el único estado mutable compartido entre requests:
// cache en memoria con copia al leer, invalidado al actualizar. La fila única
// en la base (clave + índice único) es el respaldo contra la carrera de
// primera-creación concurrente.
type ConfigurationService struct {
	db *gorm.DB

	mu     sync.RWMutex
	cached *model.SystemConfigurationModel
}

func NewConfigurationService(db *gorm.DB) *ConfigurationService {
	return &ConfigurationService{db: db}
}

// Get devuelve la configuración vigente (copia), creándola con los valores
// por defecto si todavía no existe.
func (s *ConfigurationService) Get(ctx context.Context) (model.SystemConfigurationModel, error) {
	s.mu.RLock()
	if s.cached != nil {
		cp := *s.cached
		s.mu.RUnlock()
		return cp, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return *s.cached, nil
	}

	row, err := s.load(ctx)
	if err != nil {
		return model.SystemConfigurationModel{}, err
	}
	s.cached = &row
	return row, nil
}

// Update aplica un patch parcial ya validado, persiste y refresca el cache.
func (s *ConfigurationService) Update(ctx context.Context, req dto.UpdateSystemConfigurationRequest) (model.SystemConfigurationModel, error) {
	// asegura que la fila exista antes del update
	if _, err := s.Get(ctx); err != nil {
		return model.SystemConfigurationModel{}, err
	}

	patch := req.Patch()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(patch) > 0 {
		if err := s.db.WithContext(ctx).
			Model(&model.SystemConfigurationModel{}).
			Where("system_configuration_key = ?", singletonKey).
			Updates(patch).Error; err != nil {
			return model.SystemConfigurationModel{}, fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la configuración")
		}
	}

	row, err := s.load(ctx)
	if err != nil {
		return model.SystemConfigurationModel{}, err
	}
	s.cached = &row
	return row, nil
}

func (s *ConfigurationService) load(ctx context.Context) (model.SystemConfigurationModel, error) {
	var row model.SystemConfigurationModel
	err := s.db.WithContext(ctx).
		Where("system_configuration_key = ?", singletonKey).
		First(&row).Error
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return row, err
	}

	// Creación perezosa: el upsert DO NOTHING deja ganar a quien llegue
	// primero; después se relee la fila ganadora.
	def := DefaultConfiguration()
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "system_configuration_key"}},
			DoNothing: true,
		}).
		Create(&def).Error; err != nil && !helper.IsUniqueViolation(err) {
		return row, err
	}

	err = s.db.WithContext(ctx).
		Where("system_configuration_key = ?", singletonKey).
		First(&row).Error
	return row, err
}

func DefaultConfiguration() model.SystemConfigurationModel {
	def := model.SystemConfigurationModel{
		SystemConfigurationKey:             singletonKey,
		SystemConfigurationBillingDay:      constants.DefaultBillingDay,
		SystemConfigurationGraceDays:       constants.DefaultGraceDays,
		SystemConfigurationSurchargeAmount: decimal.NewFromInt(constants.DefaultSurchargeAmount),
		SystemConfigurationSurchargeKind:   constants.SurchargeKindFixed,
	}
	if configs.ReportEmail != "" {
		email := configs.ReportEmail
		def.SystemConfigurationReportEmail = &email
	}
	return def
}

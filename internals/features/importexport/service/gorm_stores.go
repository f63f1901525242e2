// file: internals/features/importexport/service/gorm_stores.go
package service

import (
	"context"

	"gorm.io/gorm"

	memberModel "academia_backend/internals/features/academy/members/model"
	modalityModel "academia_backend/internals/features/academy/modalities/model"
	paymentModel "academia_backend/internals/features/finance/payments/model"
)

type gormMemberStore struct{ db *gorm.DB }

func NewGormMemberStore(db *gorm.DB) MemberStore { return &gormMemberStore{db: db} }

func (s *gormMemberStore) ExistsByNamePhone(ctx context.Context, name, phone string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&memberModel.MemberModel{}).
		Where("LOWER(member_name) = LOWER(?) AND member_phone = ?", name, phone).
		Count(&count).Error
	return count > 0, err
}

func (s *gormMemberStore) Create(ctx context.Context, m *memberModel.MemberModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

type gormModalityCatalog struct{ db *gorm.DB }

func NewGormModalityCatalog(db *gorm.DB) ModalityCatalog { return &gormModalityCatalog{db: db} }

func (s *gormModalityCatalog) All(ctx context.Context) ([]modalityModel.ModalityModel, error) {
	var rows []modalityModel.ModalityModel
	err := s.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

type gormPaymentStore struct{ db *gorm.DB }

func NewGormPaymentStore(db *gorm.DB) PaymentStore { return &gormPaymentStore{db: db} }

func (s *gormPaymentStore) Create(ctx context.Context, p *paymentModel.PaymentModel) error {
	return s.db.WithContext(ctx).Create(p).Error
}

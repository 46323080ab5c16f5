package models

import "gorm.io/gorm"

type ConditionRepository struct {
	db *gorm.DB
}

func NewConditionRepository(db *gorm.DB) *ConditionRepository {
	return &ConditionRepository{
		db: db,
	}
}

// GetByClient loads every active condition of a client in one query and
// keys it by supplier. Analysis calls this once per request, not once per
// item. A supplier absent from the map means the client has no active
// relationship with it.
func (r *ConditionRepository) GetByClient(clientID uint) (map[uint]ClientCondition, error) {
	var conditions []ClientCondition
	if err := r.db.
		Where("client_id = ? AND active = ?", clientID, true).
		Find(&conditions).Error; err != nil {
		return nil, err
	}
	bySupplier := make(map[uint]ClientCondition, len(conditions))
	for _, c := range conditions {
		if _, ok := bySupplier[c.SupplierID]; !ok {
			bySupplier[c.SupplierID] = c
		}
	}
	return bySupplier, nil
}

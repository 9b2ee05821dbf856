// services/table_service.go
package services

import (
	"github.com/Ashish12122003/Menumate-backend/entity"
	"github.com/Ashish12122003/Menumate-backend/repository"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

type TableInput struct {
	TableNumber  string `json:"tableNumber"`
	QRIdentifier string `json:"qrIdentifier"`
}

// Create inserts the rows for one shop in a single batch.
// Authorization has already happened by the time this runs.
func (s *TableService) Create(shopID uint, inputs []TableInput) ([]entity.Table, error) {
	tables := make([]entity.Table, 0, len(inputs))
	for _, in := range inputs {
		tables = append(tables, entity.Table{
			ShopID:       shopID,
			TableNumber:  in.TableNumber,
			QRIdentifier: in.QRIdentifier,
		})
	}
	if err := s.Repo.InsertMany(tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *TableService) List(shopID uint) ([]entity.Table, error) {
	return s.Repo.FindByShop(shopID)
}

// Delete is idempotent: removing a qr that is already gone is not an error.
func (s *TableService) Delete(shopID uint, qrIdentifier string) error {
	return s.Repo.DeleteByShopAndQR(shopID, qrIdentifier)
}

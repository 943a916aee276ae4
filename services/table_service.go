package services

import (
	"fmt"
	"log"

	"sabor-backend/entity"

	qrcode "github.com/skip2/go-qrcode"
)

const TopicTables = "tables"

type TableService struct {
	Store TableStore
	Feed  Publisher
}

func NewTableService(store TableStore, feed Publisher) *TableService {
	return &TableService{Store: store, Feed: feed}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Store.List()
}

// Select marks a free table as occupied for the session. An occupied
// table cannot be taken again until it is released.
func (s *TableService) Select(id uint) (*entity.Table, error) {
	t, err := s.Store.FindByID(id)
	if err != nil {
		return nil, ErrTableNotFound
	}
	ok, err := s.Store.SetOccupied(id, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTableOccupied
	}
	t.Occupied = true
	s.broadcast()
	return t, nil
}

// Release frees the table after checkout or logout. Releasing an already
// free table is a no-op.
func (s *TableService) Release(id uint) error {
	if _, err := s.Store.FindByID(id); err != nil {
		return ErrTableNotFound
	}
	if _, err := s.Store.SetOccupied(id, false); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

func (s *TableService) Create(tableNumber int) (*entity.Table, error) {
	if tableNumber <= 0 {
		return nil, fmt.Errorf("invalid table number: %d", tableNumber)
	}
	t := &entity.Table{TableNumber: tableNumber}
	if err := s.Store.Create(t); err != nil {
		return nil, err
	}
	s.broadcast()
	return t, nil
}

func (s *TableService) Delete(id uint) error {
	if err := s.Store.Delete(id); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

// QRCode renders the PNG printed on the physical table; scanning it lands
// on the table-selection screen for that table.
func (s *TableService) QRCode(id uint, baseURL string) ([]byte, error) {
	t, err := s.Store.FindByID(id)
	if err != nil {
		return nil, ErrTableNotFound
	}
	url := fmt.Sprintf("%s/tables/%d/select", baseURL, t.ID)
	return qrcode.Encode(url, qrcode.Medium, 256)
}

func (s *TableService) broadcast() {
	if s.Feed == nil {
		return
	}
	tables, err := s.Store.List()
	if err != nil {
		log.Printf("tables broadcast skipped: %v", err)
		return
	}
	s.Feed.Publish(TopicTables, tables)
}

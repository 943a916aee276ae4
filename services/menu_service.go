package services

import (
	"log"

	"sabor-backend/entity"
	"sabor-backend/utils"
)

const TopicMenu = "menu"

// MenuService exposes the catalog: the filtered menu for clients and the
// full CRUD surface for the admin panel.
type MenuService struct {
	Store ProductStore
	Feed  Publisher
}

func NewMenuService(store ProductStore, feed Publisher) *MenuService {
	return &MenuService{Store: store, Feed: feed}
}

// Menu is the client view, available dishes only.
func (s *MenuService) Menu() ([]entity.Product, error) {
	return s.Store.ListAvailable()
}

func (s *MenuService) AdminList() ([]entity.Product, error) {
	return s.Store.ListAll()
}

type ProductIn struct {
	Name        string
	Price       int64
	Category    string
	Description string
	Available   bool
	ImageBase64 string // optional data:image/...;base64 payload
}

func (s *MenuService) Create(in *ProductIn) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		Available:   in.Available,
	}
	if in.ImageBase64 != "" {
		data, contentType, err := utils.DecodeImageDataURL(in.ImageBase64)
		if err != nil {
			return nil, err
		}
		p.Image = data
		p.ImageType = contentType
		p.ImageSize = int64(len(data))
	}
	if err := s.Store.Create(p); err != nil {
		return nil, err
	}
	s.broadcast()
	return p, nil
}

func (s *MenuService) Update(id uint, updates map[string]any) (*entity.Product, error) {
	if _, err := s.Store.FindByID(id); err != nil {
		return nil, ErrProductNotFound
	}
	if b64, ok := updates["imageBase64"].(string); ok {
		delete(updates, "imageBase64")
		if b64 != "" {
			data, contentType, err := utils.DecodeImageDataURL(b64)
			if err != nil {
				return nil, err
			}
			updates["image"] = data
			updates["image_type"] = contentType
			updates["image_size"] = int64(len(data))
		}
	}
	if err := s.Store.Update(id, updates); err != nil {
		return nil, err
	}
	s.broadcast()
	return s.Store.FindByID(id)
}

func (s *MenuService) Delete(id uint) error {
	if err := s.Store.Delete(id); err != nil {
		return err
	}
	s.broadcast()
	return nil
}

func (s *MenuService) Image(id uint) (*entity.Product, error) {
	p, err := s.Store.GetImage(id)
	if err != nil || p.ImageSize == 0 {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *MenuService) broadcast() {
	if s.Feed == nil {
		return
	}
	menu, err := s.Store.ListAvailable()
	if err != nil {
		log.Printf("menu broadcast skipped: %v", err)
		return
	}
	s.Feed.Publish(TopicMenu, menu)
}

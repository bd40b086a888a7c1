package service

import (
	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
	"github.com/alysson-b/simulados-api/internal/repository"
)

const moduleSearchLimit = 10

type ModuleService interface {
	SearchModules(search string) ([]dto.ModuleDTO, error)
}

type moduleService struct {
	moduleRepo repository.ModuleRepository
}

func NewModuleService(moduleRepo repository.ModuleRepository) ModuleService {
	return &moduleService{moduleRepo: moduleRepo}
}

func (s *moduleService) SearchModules(search string) ([]dto.ModuleDTO, error) {
	if search == "" {
		return nil, apperr.Validation("search parameter is required")
	}
	modules, err := s.moduleRepo.SearchByName(search, moduleSearchLimit)
	if err != nil {
		return nil, apperr.Upstream("failed to search modules", err)
	}
	dtos := make([]dto.ModuleDTO, 0, len(modules))
	for _, m := range modules {
		dtos = append(dtos, dto.ModuleDTO{ID: m.ID, Nome: m.Nome})
	}
	return dtos, nil
}

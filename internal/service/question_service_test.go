package service

import (
	"testing"

	"github.com/alysson-b/simulados-api/internal/apperr"
	"github.com/alysson-b/simulados-api/internal/dto"
)

func validQuestionRequest() dto.CreateQuestionRequest {
	return dto.CreateQuestionRequest{
		Pergunta:        "Qual a capital do Brasil?",
		OpcaoA:          "São Paulo",
		OpcaoB:          "Brasília",
		OpcaoC:          "Rio de Janeiro",
		OpcaoD:          "Salvador",
		RespostaCorreta: "opcao_b",
		Modulos:         []uint{3, 5},
	}
}

func TestCreateQuestionLinksModules(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewQuestionService(repo)

	q, err := svc.CreateQuestion(validQuestionRequest())
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if q.ID == 0 {
		t.Error("question id not assigned")
	}
	if q.ModuloID != 3 {
		t.Errorf("owning module = %d, want first of the list", q.ModuloID)
	}
	if linked := repo.modules[q.ID]; len(linked) != 2 {
		t.Errorf("linked modules = %v, want both", linked)
	}
}

func TestCreateQuestionNormalizesCorrectOption(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewQuestionService(repo)

	req := validQuestionRequest()
	req.RespostaCorreta = "  OPCAO_B "
	q, err := svc.CreateQuestion(req)
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if q.RespostaCorreta != "opcao_b" {
		t.Errorf("resposta_correta = %q, want normalized opcao_b", q.RespostaCorreta)
	}
}

func TestCreateQuestionRejectsDanglingCorrectOption(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	req := validQuestionRequest()
	req.RespostaCorreta = "opcao_e" // no fifth option provided
	if _, err := svc.CreateQuestion(req); !apperr.IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}

	req = validQuestionRequest()
	req.RespostaCorreta = "opcao_z"
	if _, err := svc.CreateQuestion(req); !apperr.IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestCreateQuestionAllowsFifthOption(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	req := validQuestionRequest()
	e := "Fortaleza"
	req.OpcaoE = &e
	req.RespostaCorreta = "opcao_e"
	q, err := svc.CreateQuestion(req)
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if q.OpcaoE == nil || *q.OpcaoE != "Fortaleza" {
		t.Errorf("opcao_e = %v", q.OpcaoE)
	}
}

func TestCreateQuestionRequiresModules(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	req := validQuestionRequest()
	req.Modulos = nil
	if _, err := svc.CreateQuestion(req); !apperr.IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestGetQuestionNotFound(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	if _, err := svc.GetQuestion(999); !apperr.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestListQuestionsByModule(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewQuestionService(repo)

	seedQuestion(t, repo, "opcao_a") // ModuloID 1
	q := seedQuestion(t, repo, "opcao_a")
	q2, _ := repo.FindByID(q.ID)
	q2.ModuloID = 2
	repo.questions[q2.ID] = q2

	list, err := svc.ListQuestionsByModule(1)
	if err != nil {
		t.Fatalf("ListQuestionsByModule: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("questions in module 1 = %d, want 1", len(list))
	}
}

func TestSearchModulesRequiresTerm(t *testing.T) {
	svc := NewModuleService(newFakeModuleRepo())

	if _, err := svc.SearchModules(""); !apperr.IsValidation(err) {
		t.Errorf("err = %v, want validation", err)
	}
}

func TestSearchModulesReturnsMatches(t *testing.T) {
	repo := newFakeModuleRepo()
	repo.modules[1] = "Geografia"
	svc := NewModuleService(repo)

	modules, err := svc.SearchModules("geo")
	if err != nil {
		t.Fatalf("SearchModules: %v", err)
	}
	if len(modules) != 1 || modules[0].Nome != "Geografia" {
		t.Errorf("modules = %+v", modules)
	}
}

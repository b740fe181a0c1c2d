package services

import (
	"testing"
	"time"

	"skilledu/models"
)

type stubHistoryRepo struct {
	records []*models.HistoryRecord
	deleted []int
	cleared []int
}

func (r *stubHistoryRepo) SaveResponse(record *models.HistoryRecord) error {
	record.ID = len(r.records) + 1
	record.CreatedAt = time.Now()
	r.records = append(r.records, record)
	return nil
}

func (r *stubHistoryRepo) GetUserResponses(userID int) ([]*models.HistoryRecord, error) {
	var out []*models.HistoryRecord
	for _, record := range r.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *stubHistoryRepo) DeleteResponse(userID, responseID int) error {
	r.deleted = append(r.deleted, responseID)
	return nil
}

func (r *stubHistoryRepo) DeleteAllResponses(userID int) error {
	r.cleared = append(r.cleared, userID)
	return nil
}

func TestRecordMatchesSearch(t *testing.T) {
	service := &HistoryService{}

	tests := []struct {
		name        string
		question    string
		answer      string
		subject     string
		searchTerms []string
		expected    bool
	}{
		{
			name:        "exact match in question",
			question:    "What is the capital of France?",
			answer:      "Paris",
			subject:     "geography",
			searchTerms: []string{"capital"},
			expected:    true,
		},
		{
			name:        "case insensitive match",
			question:    "Explain PHOTOSYNTHESIS",
			answer:      "Plants convert light into energy",
			subject:     "biology",
			searchTerms: []string{"photosynthesis"},
			expected:    true,
		},
		{
			name:        "match in answer",
			question:    "Largest planet?",
			answer:      "Jupiter is the largest planet",
			subject:     "science",
			searchTerms: []string{"jupiter"},
			expected:    true,
		},
		{
			name:        "match on subject",
			question:    "What is 2+2?",
			answer:      "4",
			subject:     "mathematics",
			searchTerms: []string{"mathematics"},
			expected:    true,
		},
		{
			name:        "typo tolerance",
			question:    "How do volcanoes erupt?",
			answer:      "Pressure builds up under the crust",
			subject:     "geography",
			searchTerms: []string{"volcanos"},
			expected:    true,
		},
		{
			name:        "punctuation handling",
			question:    "Define osmosis, diffusion, and transport.",
			answer:      "Movement of water across a membrane",
			subject:     "biology",
			searchTerms: []string{"osmosis"},
			expected:    true,
		},
		{
			name:        "no match",
			question:    "What is the capital of France?",
			answer:      "Paris",
			subject:     "geography",
			searchTerms: []string{"algebra"},
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &models.HistoryRecord{
				Question: tt.question,
				Answer:   tt.answer,
				Subject:  tt.subject,
			}

			result := service.recordMatchesSearch(record, tt.searchTerms)
			if result != tt.expected {
				t.Errorf("recordMatchesSearch() = %v, expected %v for terms %v",
					result, tt.expected, tt.searchTerms)
			}
		})
	}
}

func TestGetUserResponsesPagination(t *testing.T) {
	repo := &stubHistoryRepo{}
	service := NewHistoryService(repo)

	for i := 0; i < 25; i++ {
		repo.records = append(repo.records, &models.HistoryRecord{
			ID:       i + 1,
			UserID:   7,
			Question: "question",
			Answer:   "answer",
			Subject:  "geography",
		})
	}

	page, err := service.GetUserResponses(7, 2, 10, "")
	if err != nil {
		t.Fatalf("GetUserResponses() returned error: %v", err)
	}

	if page.Total != 25 {
		t.Errorf("expected total 25, got %d", page.Total)
	}
	if len(page.Responses) != 10 {
		t.Errorf("expected 10 responses on page 2, got %d", len(page.Responses))
	}
	if page.Page != 2 || page.Limit != 10 {
		t.Errorf("unexpected page metadata: page=%d limit=%d", page.Page, page.Limit)
	}

	// Last page is partial
	page, err = service.GetUserResponses(7, 3, 10, "")
	if err != nil {
		t.Fatalf("GetUserResponses() returned error: %v", err)
	}
	if len(page.Responses) != 5 {
		t.Errorf("expected 5 responses on page 3, got %d", len(page.Responses))
	}

	// Beyond the last page
	page, err = service.GetUserResponses(7, 9, 10, "")
	if err != nil {
		t.Fatalf("GetUserResponses() returned error: %v", err)
	}
	if len(page.Responses) != 0 {
		t.Errorf("expected empty page beyond range, got %d", len(page.Responses))
	}
}

func TestGetUserResponsesSearchFilters(t *testing.T) {
	repo := &stubHistoryRepo{}
	service := NewHistoryService(repo)

	repo.records = []*models.HistoryRecord{
		{ID: 1, UserID: 7, Question: "What is the capital of France?", Answer: "Paris", Subject: "geography"},
		{ID: 2, UserID: 7, Question: "Solve x^2 = 4", Answer: "x is 2 or -2", Subject: "mathematics"},
		{ID: 3, UserID: 7, Question: "Why is the sky blue?", Answer: "Rayleigh scattering", Subject: "science"},
	}

	page, err := service.GetUserResponses(7, 1, 10, "capital")
	if err != nil {
		t.Fatalf("GetUserResponses() returned error: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected 1 matching record, got %d", page.Total)
	}
	if page.Responses[0].ID != 1 {
		t.Errorf("expected record 1, got %d", page.Responses[0].ID)
	}
}

func TestGetUserResponsesRejectsInvalidUser(t *testing.T) {
	service := NewHistoryService(&stubHistoryRepo{})

	if _, err := service.GetUserResponses(0, 1, 10, ""); err == nil {
		t.Error("expected error for invalid user ID")
	}
}

func TestDefaultPagination(t *testing.T) {
	repo := &stubHistoryRepo{}
	repo.records = []*models.HistoryRecord{
		{ID: 1, UserID: 7, Question: "q", Answer: "a", Subject: "science"},
	}
	service := NewHistoryService(repo)

	page, err := service.GetUserResponses(7, 0, 0, "")
	if err != nil {
		t.Fatalf("GetUserResponses() returned error: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("expected defaults page=1 limit=10, got page=%d limit=%d", page.Page, page.Limit)
	}
}

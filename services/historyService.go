package services

import (
	"fmt"
	"log"
	"strings"

	"skilledu/db"
	"skilledu/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultHistoryPage  = 1
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

type HistoryService struct {
	repo db.HistoryRepository
}

func NewHistoryService(repo db.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) SaveResponse(userID int, record *models.HistoryRecord) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user ID: %d", userID)
	}

	record.UserID = userID
	if err := s.repo.SaveResponse(record); err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	log.Printf("[INFO] Saved response %d for user %d", record.ID, userID)
	return nil
}

func (s *HistoryService) GetUserResponses(userID, page, limit int, search string) (*models.HistoryPage, error) {
	log.Printf("[INFO] Starting history retrieval for user %d (page %d, limit %d)", userID, page, limit)

	if userID <= 0 {
		return nil, fmt.Errorf("invalid user ID: %d", userID)
	}

	if page <= 0 {
		page = defaultHistoryPage
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.repo.GetUserResponses(userID)
	if err != nil {
		log.Printf("[ERROR] Failed to get responses for user %d: %v", userID, err)
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}

	searchTerms := strings.Fields(strings.ToLower(strings.TrimSpace(search)))
	if len(searchTerms) > 0 {
		var matching []*models.HistoryRecord
		for _, record := range records {
			if s.recordMatchesSearch(record, searchTerms) {
				matching = append(matching, record)
			}
		}
		log.Printf("[INFO] Found %d responses matching search criteria", len(matching))
		records = matching
	}

	total := len(records)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageRecords := records[start:end]
	if pageRecords == nil {
		pageRecords = make([]*models.HistoryRecord, 0)
	}

	log.Printf("[INFO] Returning %d of %d responses for user %d", len(pageRecords), total, userID)
	return &models.HistoryPage{
		Total:     total,
		Page:      page,
		Limit:     limit,
		Responses: pageRecords,
	}, nil
}

func (s *HistoryService) DeleteResponse(userID, responseID int) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user ID: %d", userID)
	}
	if responseID <= 0 {
		return fmt.Errorf("invalid response ID: %d", responseID)
	}

	if err := s.repo.DeleteResponse(userID, responseID); err != nil {
		log.Printf("[ERROR] Failed to delete response %d for user %d: %v", responseID, userID, err)
		return err
	}

	log.Printf("[INFO] Deleted response %d for user %d", responseID, userID)
	return nil
}

func (s *HistoryService) DeleteAllResponses(userID int) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user ID: %d", userID)
	}

	if err := s.repo.DeleteAllResponses(userID); err != nil {
		log.Printf("[ERROR] Failed to delete responses for user %d: %v", userID, err)
		return fmt.Errorf("failed to delete responses: %w", err)
	}

	log.Printf("[INFO] Deleted all responses for user %d", userID)
	return nil
}

func (s *HistoryService) recordMatchesSearch(record *models.HistoryRecord, searchTerms []string) bool {
	content := record.Question + " " + record.Answer + " " + record.Subject
	words := strings.Fields(strings.ToLower(content))

	cleanWords := make([]string, 0, len(words))
	for _, word := range words {
		cleanWord := strings.Trim(word, ".,!?;:()[]{}\"'")
		if len(cleanWord) > 0 {
			cleanWords = append(cleanWords, cleanWord)
		}
	}

	for _, term := range searchTerms {
		if fuzzy.MatchFold(term, content) {
			return true
		}

		// Typo tolerance against individual words
		if matches := fuzzy.Find(term, cleanWords); len(matches) > 0 {
			return true
		}
	}

	return false
}

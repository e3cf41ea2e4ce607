package exporter

import (
	"context"
	"time"

	"github.com/KissOfTheVoid/parse-joinrpg/pkg/api"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/flatten"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/logger"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/metrics"
	"github.com/KissOfTheVoid/parse-joinrpg/pkg/writer"

	"go.uber.org/zap"
)

// APIClient defines the remote API surface the exporter needs
type APIClient interface {
	// Authenticate obtains the bearer token used by all later calls
	Authenticate(ctx context.Context) error

	// CharacterList returns the character summaries for the project
	CharacterList(ctx context.Context) ([]api.Character, error)

	// CharacterDetails returns the detail record for one character
	CharacterDetails(ctx context.Context, characterID string) (map[string]interface{}, error)

	// Close releases the underlying session
	Close()
}

// Service runs one export: authenticate, list, collect details, write the table
type Service struct {
	logger *logger.Logger
	client APIClient
	writer writer.TableWriter
}

// NewService creates a new exporter service instance
func NewService(l *logger.Logger, c APIClient, w writer.TableWriter) *Service {
	return &Service{
		logger: l,
		client: c,
		writer: w,
	}
}

// Run executes the export pipeline sequentially. A returned error means the run
// aborted before any data could be collected; per-character failures and export
// failures are logged here and never propagate.
func (s *Service) Run(ctx context.Context) error {
	defer s.client.Close()

	s.logger.Info("authenticating")
	if err := s.client.Authenticate(ctx); err != nil {
		return err
	}

	s.logger.Info("fetching character list")
	characters, err := s.client.CharacterList(ctx)
	if err != nil {
		return err
	}
	metrics.CharactersListedTotal.Add(float64(len(characters)))

	if len(characters) == 0 {
		s.logger.Info("no characters found")
		return nil
	}

	records, skipped := s.collectDetails(ctx, characters)
	if skipped > 0 {
		s.logger.Warn("some characters were skipped",
			zap.Int("skipped", skipped), zap.Int("collected", len(records)))
	}

	if len(records) == 0 {
		s.logger.Info("no character data available to write")
		return nil
	}

	table := flatten.NewTable(records)
	if err := s.writer.Write(table); err != nil {
		metrics.ExportErrorsTotal.Inc()
		s.logger.Error("failed to write output", err)
		return nil
	}

	return nil
}

// collectDetails folds over the character summaries, accumulating the detail
// records that could be fetched and counting the ones that could not. A failure
// for one character never stops collection of the rest.
func (s *Service) collectDetails(ctx context.Context, characters []api.Character) ([]map[string]interface{}, int) {
	records := make([]map[string]interface{}, 0, len(characters))
	skipped := 0

	for _, character := range characters {
		id := character.ID()
		if id == "" {
			s.logger.Warn("character entry has no identifier, skipping")
			metrics.DetailsSkippedTotal.Inc()
			skipped++
			continue
		}

		s.logger.Debug("fetching character details", zap.String("character_id", id))
		start := time.Now()
		detail, err := s.client.CharacterDetails(ctx, id)
		metrics.DetailFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			s.logger.Warn("failed to fetch character details, skipping",
				zap.String("character_id", id), zap.Error(err))
			metrics.DetailsSkippedTotal.Inc()
			skipped++
			continue
		}

		metrics.DetailsFetchedTotal.Inc()
		records = append(records, detail)
	}

	return records, skipped
}

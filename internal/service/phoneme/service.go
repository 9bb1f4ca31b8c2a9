package phoneme

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/phoneme-service/internal/domain"
	"github.com/heartmarshall/phoneme-service/internal/lexicon"
	"github.com/heartmarshall/phoneme-service/pkg/ctxutil"
)

// storeProvider hands out the dictionary for one invocation. lexicon.Cache
// and lexicon.Reloader both satisfy it.
type storeProvider interface {
	Store(ctx context.Context) (*lexicon.Store, error)
}

// Service resolves words to phoneme strings.
type Service struct {
	log    *slog.Logger
	stores storeProvider
}

// NewService creates a new phoneme Service.
func NewService(logger *slog.Logger, stores storeProvider) *Service {
	return &Service{
		log:    logger.With("service", "phoneme"),
		stores: stores,
	}
}

// Resolve looks rawWord up in store. It never fails: a miss echoes rawWord
// back unchanged, with its original casing.
func Resolve(store *lexicon.Store, rawWord string) domain.LookupResult {
	if phonemes, ok := store.First(domain.NormalizeWord(rawWord)); ok {
		return domain.LookupResult{Phonemes: phonemes, Found: true}
	}
	return domain.LookupResult{Phonemes: rawWord, Found: false}
}

// Resolve obtains the dictionary and resolves rawWord against it. The only
// error is a failure to load the dictionary.
func (s *Service) Resolve(ctx context.Context, rawWord string) (domain.LookupResult, error) {
	store, err := s.store(ctx)
	if err != nil {
		return domain.LookupResult{}, err
	}

	result := Resolve(store, rawWord)

	s.log.DebugContext(ctx, "word resolved",
		slog.String("word", rawWord),
		slog.Bool("found", result.Found),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	return result, nil
}

// Convert serves a single invocation: it resolves the requested word and
// attaches the matching message.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (*ConvertResult, error) {
	result, err := s.Resolve(ctx, input.Word)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	return &ConvertResult{
		Phonemes: result.Phonemes,
		Message:  result.Message(),
		Found:    result.Found,
	}, nil
}

// Pronunciations returns every variant recorded for rawWord in dictionary
// order, each with its IPA rendering. Unknown words yield domain.ErrNotFound.
func (s *Service) Pronunciations(ctx context.Context, rawWord string) (*PronunciationsResult, error) {
	if rawWord == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	store, err := s.store(ctx)
	if err != nil {
		return nil, fmt.Errorf("pronunciations: %w", err)
	}

	normalized := domain.NormalizeWord(rawWord)
	variants, ok := store.Lookup(normalized)
	if !ok {
		return nil, &domain.UnknownWordError{Word: rawWord}
	}

	out := make([]domain.PronunciationVariant, len(variants))
	for i, v := range variants {
		out[i] = domain.PronunciationVariant{
			Index:    i,
			Phonemes: v,
			IPA:      lexicon.ToIPA(v),
		}
	}

	return &PronunciationsResult{Word: normalized, Variants: out}, nil
}

func (s *Service) store(ctx context.Context) (*lexicon.Store, error) {
	store, err := s.stores.Store(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "dictionary unavailable", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return store, nil
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/phoneme-service/internal/app"
	"github.com/heartmarshall/phoneme-service/internal/config"
	"github.com/heartmarshall/phoneme-service/internal/domain"
	"github.com/heartmarshall/phoneme-service/internal/lexicon"
	"github.com/heartmarshall/phoneme-service/internal/service/phoneme"
	"github.com/heartmarshall/phoneme-service/pkg/ctxutil"
)

// Response is the JSON object printed for each word.
type Response struct {
	ReqID    string    `json:"req_id"`
	Phonemes string    `json:"phonemes"`
	Message  string    `json:"message"`
	Variants []Variant `json:"variants,omitempty"`
}

// Variant is one pronunciation of a word.
type Variant struct {
	Index    int    `json:"index"`
	Phonemes string `json:"phonemes"`
	IPA      string `json:"ipa"`
}

// Run converts words and writes one JSON line per word to w. A dictionary
// that cannot be loaded fails the whole run before anything is written.
func Run(ctx context.Context, w io.Writer, flags *Flags, words []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	stores, err := app.NewStoreProvider(cfg.Dictionary)
	if err != nil {
		return err
	}

	store, err := stores.Store(ctx)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	app.LogStoreStats(logger, store)

	svc := phoneme.NewService(logger, stores)
	enc := json.NewEncoder(w)

	for _, word := range words {
		resp, err := convert(ctxutil.WithRequestID(ctx, ctxutil.NewRequestID()), svc, word, flags.Variants)
		if err != nil {
			return err
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return nil
}

func loadConfig(flags *Flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.CfgFile != "" {
		cfg, err = config.LoadFile(flags.CfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flags.DictPath != "" {
		cfg.Dictionary.Path = flags.DictPath
	}
	if flags.Format != "" {
		if _, err := lexicon.SplitterByName(flags.Format); err != nil {
			return nil, err
		}
		cfg.Dictionary.Format = flags.Format
	}
	return cfg, nil
}

func convert(ctx context.Context, svc *phoneme.Service, word string, withVariants bool) (*Response, error) {
	result, err := svc.Convert(ctx, phoneme.ConvertInput{Word: word})
	if err != nil {
		return nil, err
	}

	resp := &Response{
		ReqID:    ctxutil.RequestIDFromCtx(ctx),
		Phonemes: result.Phonemes,
		Message:  result.Message,
	}
	if !withVariants || !result.Found {
		return resp, nil
	}

	prons, err := svc.Pronunciations(ctx, word)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return resp, nil
		}
		return nil, err
	}
	for _, v := range prons.Variants {
		resp.Variants = append(resp.Variants, Variant{Index: v.Index, Phonemes: v.Phonemes, IPA: v.IPA})
	}
	return resp, nil
}

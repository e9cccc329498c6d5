// Package investigate runs the optional pre-scoring investigation: a web
// fact-check of the video title and a reputation probe of the channel.
package investigate

import (
	"context"
	"fmt"
	"log"

	"baitcheck/internal/ai"
	"baitcheck/internal/models"

	"golang.org/x/sync/errgroup"
)

// Default verdicts used when a branch has nothing to summarize.
const (
	VerdictNothingToVerify = "nothing to verify"
	VerdictNoIssuesFound   = "no issues found"
)

// QueryDeriver extracts a fact-check search query from a video title, or
// returns ai.NotApplicable when the title holds no checkable claim.
type QueryDeriver interface {
	DeriveFactCheckQuery(ctx context.Context, title string) (string, error)
}

// Searcher issues one web search.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Summarizer condenses search results into verdicts.
type Summarizer interface {
	SummarizeFactCheck(ctx context.Context, title, query string, results []models.SearchResult) (string, int, error)
	SummarizeReputation(ctx context.Context, channel, query string, results []models.SearchResult) (string, []string, error)
}

// Agent wires the fixed two-stage fan-out: both searches run concurrently,
// then both summarizations run concurrently. Search failures degrade to
// empty result sets; model failures abort the investigation.
type Agent struct {
	deriver    QueryDeriver
	searcher   Searcher
	summarizer Summarizer
}

func NewAgent(deriver QueryDeriver, searcher Searcher, summarizer Summarizer) *Agent {
	return &Agent{
		deriver:    deriver,
		searcher:   searcher,
		summarizer: summarizer,
	}
}

// ReputationQuery formats the deterministic channel-reputation query.
func ReputationQuery(channel string) string {
	return fmt.Sprintf("%q (controversy OR clickbait OR fraud OR criticism)", channel)
}

// Run performs the full investigation for one video. It returns either a
// complete investigation or an error; there is no partial result.
func (a *Agent) Run(ctx context.Context, title, channel string) (*models.Investigation, error) {
	factQuery, err := a.deriver.DeriveFactCheckQuery(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to derive fact-check query: %w", err)
	}
	repQuery := ReputationQuery(channel)

	// Stage 1: both searches in parallel. A failed search is absorbed as an
	// empty result set for its branch.
	var factResults, repResults []models.SearchResult

	var searches errgroup.Group
	if factQuery != ai.NotApplicable {
		searches.Go(func() error {
			results, err := a.searcher.Search(ctx, factQuery)
			if err != nil {
				log.Printf("Warning: fact-check search failed: %v", err)
				return nil
			}
			factResults = results
			return nil
		})
	}
	searches.Go(func() error {
		results, err := a.searcher.Search(ctx, repQuery)
		if err != nil {
			log.Printf("Warning: reputation search failed: %v", err)
			return nil
		}
		repResults = results
		return nil
	})
	if err := searches.Wait(); err != nil {
		return nil, err
	}

	// Stage 2: the two verdict calls are independent of each other. Either
	// failing fails the whole investigation.
	inv := &models.Investigation{
		FactCheck: models.FactCheckResult{
			Query:   factQuery,
			Results: factResults,
			Verdict: VerdictNothingToVerify,
		},
		ChannelReputation: models.ChannelReputation{
			Query:   repQuery,
			Results: repResults,
			Verdict: VerdictNoIssuesFound,
			Signals: []string{},
		},
	}

	var verdicts errgroup.Group
	if len(factResults) > 0 {
		verdicts.Go(func() error {
			verdict, credible, err := a.summarizer.SummarizeFactCheck(ctx, title, factQuery, factResults)
			if err != nil {
				return fmt.Errorf("fact-check summarization failed: %w", err)
			}
			inv.FactCheck.Verdict = verdict
			inv.FactCheck.CredibleSources = credible
			return nil
		})
	}
	if len(repResults) > 0 {
		verdicts.Go(func() error {
			verdict, signals, err := a.summarizer.SummarizeReputation(ctx, channel, repQuery, repResults)
			if err != nil {
				return fmt.Errorf("reputation summarization failed: %w", err)
			}
			inv.ChannelReputation.Verdict = verdict
			if signals != nil {
				inv.ChannelReputation.Signals = signals
			}
			return nil
		})
	}
	if err := verdicts.Wait(); err != nil {
		return nil, err
	}

	return inv, nil
}

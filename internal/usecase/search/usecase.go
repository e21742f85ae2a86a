package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"portal-automation/internal/application/port/input"
	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

var _ input.SearchExecutor = (*UseCase)(nil)

const (
	DefaultBaseURL = "https://www.google.com/search"
	DefaultQuery   = "OpenAI"
	DefaultWait    = 5 * time.Second

	scrollToBottomScript = "window.scrollTo(0, document.body.scrollHeight);"
)

type UseCase struct {
	session output.SessionPort
	baseURL string
	logger  output.LoggerPort
}

func New(session output.SessionPort, baseURL string, logger output.LoggerPort) *UseCase {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &UseCase{
		session: session,
		baseURL: baseURL,
		logger:  logger.WithField("component", "search"),
	}
}

// Execute opens the results page for query, applies wait as the implicit
// wait and scrolls to the bottom.
func (uc *UseCase) Execute(ctx context.Context, query string, wait time.Duration) (*input.SearchResult, error) {
	if err := uc.Search(ctx, query); err != nil {
		return nil, err
	}
	if err := uc.session.SetImplicitWait(wait); err != nil {
		uc.logger.Error("Error during wait", "error", err)
		return nil, err
	}
	if err := uc.ScrollToBottom(ctx); err != nil {
		return nil, err
	}

	current, err := uc.session.CurrentURL(ctx)
	if err != nil {
		uc.logger.Warn("Could not read URL after search", "error", err)
	}
	return &input.SearchResult{Query: query, URL: current}, nil
}

func (uc *UseCase) Search(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		err := fmt.Errorf("%w: empty search query", entity.ErrInvalidInput)
		uc.logger.Error("Error performing search", "error", err)
		return err
	}

	if err := uc.session.Navigate(ctx, uc.searchURL(query)); err != nil {
		uc.logger.Error("Error performing search", "query", query, "error", err)
		return err
	}

	uc.logger.Info("Performed search", "query", query)
	return nil
}

func (uc *UseCase) ScrollToBottom(ctx context.Context) error {
	if _, err := uc.session.RunScript(ctx, scrollToBottomScript); err != nil {
		uc.logger.Error("Error scrolling to bottom", "error", err)
		return err
	}

	uc.logger.Info("Scrolled to bottom of the page")
	return nil
}

func (uc *UseCase) searchURL(query string) string {
	sep := "?"
	if strings.Contains(uc.baseURL, "?") {
		sep = "&"
	}
	return uc.baseURL + sep + "q=" + url.QueryEscape(query)
}

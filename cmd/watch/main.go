// Command watch logs in to Weverse and prints every new notification, post,
// comment, media, live, notice and moment for the signed-in account's
// communities until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anson-Quek/weverse-go/pkg/config"
	"github.com/Anson-Quek/weverse-go/pkg/lib/log"
	"github.com/Anson-Quek/weverse-go/pkg/stream"
	"github.com/Anson-Quek/weverse-go/pkg/weverse"
	"github.com/Anson-Quek/weverse-go/pkg/weverse/objects"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := context.Background()

	client := weverse.NewClient(&cfg.Weverse, logger)
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s := stream.New(client, &logHandler{logger: logger}, logger, &cfg.Stream)
	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	defer s.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}

// logHandler prints each new item through the structured logger.
type logHandler struct {
	stream.BaseHandler
	logger *zerolog.Logger
}

func (h *logHandler) OnNotification(n *objects.Notification) {
	h.logger.Info().
		Int64("id", n.ID).
		Str("category", string(n.Category)).
		Str("community", n.Community.Name).
		Str("message", n.Message).
		Msg("New notification")
}

func (h *logHandler) OnPost(p *objects.Post) {
	h.logger.Info().
		Str("id", p.ID).
		Str("author", p.Author.ProfileName).
		Str("body", p.BodyText()).
		Msg("New post")
}

func (h *logHandler) OnComment(c *objects.Comment) {
	h.logger.Info().
		Str("id", c.ID).
		Str("author", c.Author.ProfileName).
		Str("body", c.BodyText()).
		Msg("New artist comment")
}

func (h *logHandler) OnMedia(m objects.Media) {
	h.logger.Info().
		Str("id", m.MediaPost().ID).
		Str("title", m.MediaPost().Title).
		Msg("New media")
}

func (h *logHandler) OnLive(l *objects.Live) {
	h.logger.Info().
		Str("id", l.ID).
		Str("title", l.Title).
		Msg("New live broadcast")
}

func (h *logHandler) OnNotice(n *objects.Notice) {
	h.logger.Info().
		Int64("id", n.ID).
		Str("title", n.Title).
		Msg("New notice")
}

func (h *logHandler) OnMoment(m objects.MomentLike) {
	h.logger.Info().
		Str("id", m.MomentPost().ID).
		Str("author", m.MomentPost().Author.ProfileName).
		Msg("New moment")
}

func (h *logHandler) OnError(err error) {
	h.logger.Error().Err(err).Msg("Stream error")
}

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/storage"
)

type CreatePlayerInput struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
}

type PlayerService interface {
	Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetByID(ctx context.Context, id string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	UploadEmblem(ctx context.Context, id string, contentType string, reader io.Reader) (*models.Player, error)
	Delete(ctx context.Context, id string) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	logger     *slog.Logger
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, logger *slog.Logger) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	if input.ID == "" {
		return nil, ErrPlayerIDRequired
	}
	if input.Name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		ID:      input.ID,
		Name:    input.Name,
		State:   input.State,
		Country: input.Country,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, ErrPlayerConflict
		}
		return nil, err
	}
	return player, nil
}

func (s *playerService) GetByID(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	populatePlayerEmblemURL(player, s.uploader)
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		populatePlayerEmblemURL(p, s.uploader)
	}
	return playersToValues(players), nil
}

func (s *playerService) UploadEmblem(ctx context.Context, id string, contentType string, reader io.Reader) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("emblems/players/%s_%d%s", player.ID, time.Now().Unix(), ext)
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload emblem for player %s: %w", id, err)
	}

	oldKey := player.EmblemKey
	if err := s.playerRepo.UpdateEmblemKey(ctx, player.ID, &result.Key); err != nil {
		return nil, err
	}
	player.EmblemKey = &result.Key
	populatePlayerEmblemURL(player, s.uploader)

	// Best-effort cleanup of the replaced object.
	if oldKey != nil && *oldKey != "" && *oldKey != result.Key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete previous emblem",
				slog.String("player_id", player.ID),
				slog.String("key", *oldKey),
				slog.Any("error", err),
			)
		}
	}
	return player, nil
}

func (s *playerService) Delete(ctx context.Context, id string) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}
	return nil
}

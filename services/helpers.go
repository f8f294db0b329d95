package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/standings"
	"github.com/Dosada05/league-standings/storage"
)

// populatePlayerEmblemURL resolves the stored object key into a public
// URL for responses.
func populatePlayerEmblemURL(player *models.Player, uploader storage.FileUploader) {
	if player != nil && player.EmblemKey != nil && *player.EmblemKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*player.EmblemKey); url != "" {
			player.EmblemURL = &url
		}
	}
}

// GetExtensionFromContentType maps an image content type to a file
// extension for emblem object keys.
func GetExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrEmblemContentType, contentType)
	}
}

// rawRowsFromStored converts both stored schemas into the normalizer's
// input shape, with team rows last so histories interleave purely by
// date order inside the fold.
func rawRowsFromStored(solo []*models.SoloMatchRow, team []*models.TeamMatchRow) []standings.RawRow {
	rows := make([]standings.RawRow, 0, len(solo)+len(team))
	for _, r := range solo {
		if r != nil {
			rows = append(rows, standings.RawFromSolo(*r))
		}
	}
	for _, r := range team {
		if r != nil {
			rows = append(rows, standings.RawFromTeam(*r))
		}
	}
	return rows
}

func playersToValues(players []*models.Player) []models.Player {
	result := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result
}

// eventKey identifies one tournament instance: one date plus one name.
func eventKey(name string, date string) string {
	return strings.TrimSpace(name) + "|" + date
}

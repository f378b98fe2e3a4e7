package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"greeting-hub/errors"
	"greeting-hub/moderation"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
)

//go:embed censored/*
var censoredFolder embed.FS

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// LoadCensoredWords reads every .txt file of dir, one word per line.
// The file name is the language of the list ("fr.txt" -> "fr").
func LoadCensoredWords(fsys fs.FS, dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// ⚠️Don't use strings.Split, files may come with \r\n
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				uniqueWords[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	slices.Sort(words)

	return &CensoredData{Words: words, Languages: languages}, nil
}

// NewEmbeddedModerator builds the chat moderator from the word lists shipped with the binary.
func NewEmbeddedModerator(log *slog.Logger, charReplacement rune) (*moderation.Moderator, error) {
	data, err := LoadCensoredWords(censoredFolder, "censored")
	if err != nil {
		return nil, err
	}
	log.Info("Censored words loaded",
		"languages", strings.Join(data.Languages, ","), "words", len(data.Words))
	return moderation.NewModerator(data.Words, charReplacement, log)
}

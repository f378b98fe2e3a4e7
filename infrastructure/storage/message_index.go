package storage

import (
	"context"
	"greeting-hub/domain"

	"github.com/blugelabs/bluge"
)

const (
	fieldGroup   = "group_id"
	fieldContent = "content"
	fieldKey     = "key"
)

// MessageIndex is the full-text side of the chat history.
// Documents only point back to their Badger key, the message itself stays in Badger.
type MessageIndex struct {
	writer *bluge.Writer
}

func NewMessageIndex(writer *bluge.Writer) *MessageIndex {
	return &MessageIndex{writer: writer}
}

func (i *MessageIndex) Index(key string, message domain.ChatMessage) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField(fieldGroup, string(message.GroupID)).StoreValue()).
		AddField(bluge.NewTextField(fieldContent, message.Content)).
		AddField(bluge.NewKeywordField(fieldKey, key).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the Badger keys of the best matching messages of a group.
func (i *MessageIndex) Search(ctx context.Context, groupID domain.GroupID, terms string, limit int) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField(fieldContent)).
		AddMust(bluge.NewTermQuery(string(groupID)).SetField(fieldGroup))

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var keys []string
	match, err := matches.Next()
	for err == nil && match != nil {
		var key string
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldKey {
				key = string(value)
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if key != "" {
			keys = append(keys, key)
		}
		match, err = matches.Next()
	}
	return keys, err
}

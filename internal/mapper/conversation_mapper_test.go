package mapper

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"miva-analytics-be/internal/model"
)

func TestConversationToEntityNilGuard(t *testing.T) {
	m := NewConversationMapper()

	if got := m.ConversationToEntity(nil); got != nil {
		t.Errorf("ConversationToEntity(nil) = %v, want nil", got)
	}
}

func TestConversationToEntitySources(t *testing.T) {
	m := NewConversationMapper()

	tests := []struct {
		name        string
		sources     datatypes.JSON
		wantNil     bool
		wantDocsLen int
	}{
		{
			name:        "valid sources",
			sources:     datatypes.JSON([]byte(`{"documents": ["handbook.pdf", "faq.md"]}`)),
			wantDocsLen: 2,
		},
		{
			name:    "empty column",
			sources: nil,
			wantNil: true,
		},
		{
			name:    "malformed json degrades to nil",
			sources: datatypes.JSON([]byte(`{"documents": [`)),
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ConversationToEntity(&model.ConversationHistory{
				Id:      uuid.New(),
				UserId:  uuid.New(),
				Sources: tt.sources,
			})

			if tt.wantNil {
				if got.Sources != nil {
					t.Errorf("Sources = %v, want nil", got.Sources)
				}
				return
			}
			docs, ok := got.Sources["documents"].([]interface{})
			if !ok {
				t.Fatalf("Sources missing documents: %v", got.Sources)
			}
			if len(docs) != tt.wantDocsLen {
				t.Errorf("documents length = %d, want %d", len(docs), tt.wantDocsLen)
			}
		})
	}
}

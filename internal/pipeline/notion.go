package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/jomei/notionapi"
)

// NotionClipper handles clipping release records to a Notion database
type NotionClipper struct {
	client *notionapi.Client
	dbID   notionapi.DatabaseID
}

// NewNotionClipper creates a new Notion clipper
func NewNotionClipper(token string, databaseID string) (*NotionClipper, error) {
	if token == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is required")
	}

	nc := &NotionClipper{
		client: notionapi.NewClient(notionapi.Token(token)),
	}

	if databaseID != "" {
		nc.dbID = notionapi.DatabaseID(databaseID)
	}

	return nc, nil
}

// CreateDatabase creates a new Notion database for release clipping and
// returns its ID
func (nc *NotionClipper) CreateDatabase(ctx context.Context, pageID string) (string, error) {
	if pageID == "" {
		return "", fmt.Errorf("NOTION_PAGE_ID is required to create a new database")
	}

	dbRequest := &notionapi.DatabaseCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(pageID),
		},
		Title: []notionapi.RichText{
			{
				Text: &notionapi.Text{
					Content: "Gacha Release Clippings",
				},
			},
		},
		Properties: notionapi.PropertyConfigs{
			"Title": notionapi.TitlePropertyConfig{
				Type: notionapi.PropertyConfigTypeTitle,
			},
			"URL": notionapi.URLPropertyConfig{
				Type: notionapi.PropertyConfigTypeURL,
			},
			"Manufacturer": notionapi.SelectPropertyConfig{
				Type: notionapi.PropertyConfigTypeSelect,
				Select: notionapi.Select{
					Options: []notionapi.Option{
						{Name: "BANDAI", Color: notionapi.ColorBlue},
						{Name: "タカラトミーアーツ", Color: notionapi.ColorGreen},
						{Name: "ケンエレファント", Color: notionapi.ColorPurple},
						{Name: "スタンド・ストーンズ", Color: notionapi.ColorYellow},
						{Name: "エール", Color: notionapi.ColorOrange},
					},
				},
			},
			"Series": notionapi.SelectPropertyConfig{
				Type: notionapi.PropertyConfigTypeSelect,
				Select: notionapi.Select{
					Options: []notionapi.Option{},
				},
			},
			"ReleaseDate": notionapi.RichTextPropertyConfig{
				Type: notionapi.PropertyConfigTypeRichText,
			},
			"PriceYen": notionapi.NumberPropertyConfig{
				Type: notionapi.PropertyConfigTypeNumber,
				Number: notionapi.NumberFormat{
					Format: notionapi.FormatNumber,
				},
			},
			"Summary": notionapi.RichTextPropertyConfig{
				Type: notionapi.PropertyConfigTypeRichText,
			},
		},
	}

	db, err := nc.client.Database.Create(ctx, dbRequest)
	if err != nil {
		return "", fmt.Errorf("failed to create Notion database: %w", err)
	}

	nc.dbID = notionapi.DatabaseID(db.ID)
	fmt.Fprintf(os.Stderr, "Notion database created: %s\n", db.ID)

	return string(db.ID), nil
}

// ClipRelease clips one release record to Notion
func (nc *NotionClipper) ClipRelease(ctx context.Context, r ReleaseRecord) error {
	if nc.dbID == "" {
		return fmt.Errorf("database ID not set")
	}

	properties := notionapi.Properties{
		"Title": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: r.Title,
					},
				},
			},
		},
		"URL": notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  r.SourceURL,
		},
		"Manufacturer": notionapi.SelectProperty{
			Type: notionapi.PropertyTypeSelect,
			Select: notionapi.Option{
				Name: r.Manufacturer,
			},
		},
	}

	if r.Series != nil {
		properties["Series"] = notionapi.SelectProperty{
			Type: notionapi.PropertyTypeSelect,
			Select: notionapi.Option{
				Name: *r.Series,
			},
		}
	}

	if r.ReleaseDate != nil {
		properties["ReleaseDate"] = notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: *r.ReleaseDate,
					},
				},
			},
		}
	}

	if r.PriceYen != nil {
		properties["PriceYen"] = notionapi.NumberProperty{
			Type:   notionapi.PropertyTypeNumber,
			Number: float64(*r.PriceYen),
		}
	}

	if r.Summary != "" {
		properties["Summary"] = notionapi.RichTextProperty{
			Type: notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{
				{
					Text: &notionapi.Text{
						Content: truncateText(r.Summary, 2000), // Notion limit
					},
				},
			},
		}
	}

	pageRequest := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: nc.dbID,
		},
		Properties: properties,
	}

	_, err := nc.client.Page.Create(ctx, pageRequest)
	if err != nil {
		return fmt.Errorf("failed to clip release: %w", err)
	}

	return nil
}

// ClipReleases clips all records, skipping individual failures
func (nc *NotionClipper) ClipReleases(ctx context.Context, releases []ReleaseRecord) int {
	clipped := 0
	for _, r := range releases {
		if err := nc.ClipRelease(ctx, r); err != nil {
			warnf("failed to clip release '%s': %v", r.Title, err)
			continue
		}
		clipped++
	}
	return clipped
}

// truncateText truncates text to maxLen characters
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

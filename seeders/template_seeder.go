package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Override the compiled 할당 default with the production wording. The rest of
// the statuses run on the compiled defaults until an operator edits them.
var templateSeed = map[string]string{
	"할당": "{name}님, 요청하신 인테리어 견적({workContent})이 업체에 전달되었습니다. 업체에서 곧 연락드릴 예정입니다.",
}

func seedMessageTemplates(ctx context.Context, db *pgxpool.Pool) error {
	for status, content := range templateSeed {
		_, err := db.Exec(ctx, `
			INSERT INTO message_templates (status, content)
			VALUES ($1, $2)
			ON CONFLICT (status) DO NOTHING`,
			status, content,
		)
		if err != nil {
			return fmt.Errorf("failed to seed template for %s: %w", status, err)
		}
	}
	log.Printf("  - %d message template(s) ensured", len(templateSeed))
	return nil
}

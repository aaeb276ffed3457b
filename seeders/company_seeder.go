package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companySeed struct {
	name         string
	region       string
	grade        int
	serviceAreas []string
	serviceTypes []string
	maxCapacity  int
}

var companySeeds = []companySeed{
	{"한빛인테리어", "서울", 1, []string{"서울", "경기 남부"}, []string{"아파트 전체", "주방", "욕실"}, 10},
	{"우리홈디자인", "경기", 2, []string{"경기", "인천"}, []string{"아파트 전체", "도배", "장판"}, 8},
	{"청솔리모델링", "부산", 2, []string{"부산", "경남"}, []string{"아파트 전체", "상가"}, 6},
	{"더좋은집", "서울", 3, []string{"서울"}, []string{"욕실", "주방"}, 5},
}

func seedCompanies(ctx context.Context, db *pgxpool.Pool) error {
	for _, c := range companySeeds {
		_, err := db.Exec(ctx, `
			INSERT INTO companies (name, region, grade, service_areas, service_types, max_capacity)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO NOTHING`,
			c.name, c.region, c.grade, c.serviceAreas, c.serviceTypes, c.maxCapacity,
		)
		if err != nil {
			return fmt.Errorf("failed to seed company %s: %w", c.name, err)
		}
	}
	log.Printf("  - %d companies ensured", len(companySeeds))
	return nil
}

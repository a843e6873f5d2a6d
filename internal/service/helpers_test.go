package service

import (
	"context"
	"time"

	"github.com/godilite/collab-rating/internal/repository/models"
	"github.com/godilite/collab-rating/internal/service/mocks"
)

// march15 puts "now" in the 2024-03 cycle; 2024-02 is the previous one.
var march15 = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testCycles() *CycleValidator {
	return NewCycleValidator(WithClock(fixedClock(march15)))
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// newDirectory builds a directory mock over fixed users and org units.
func newDirectory(users []models.UserIdentity, departments, positions []models.OrgUnit) *mocks.MockOrgDirectoryRepository {
	find := func(units []models.OrgUnit) func(context.Context, string) (*models.OrgUnit, error) {
		return func(_ context.Context, value string) (*models.OrgUnit, error) {
			for _, u := range units {
				if u.Code == value {
					return &u, nil
				}
			}
			for _, u := range units {
				if u.Name == value {
					return &u, nil
				}
			}
			return nil, nil
		}
	}
	return &mocks.MockOrgDirectoryRepository{
		GetUsersFunc: func(_ context.Context, ids []string) (map[string]models.UserIdentity, error) {
			out := make(map[string]models.UserIdentity)
			for _, id := range ids {
				for _, u := range users {
					if u.ID == id {
						out[id] = u
					}
				}
			}
			return out, nil
		},
		FindDepartmentFunc: find(departments),
		FindPositionFunc:   find(positions),
	}
}

var (
	techDept  = models.OrgUnit{Code: "tech", Name: "技术部"}
	salesDept = models.OrgUnit{Code: "sales", Name: "销售部"}
	devPos    = models.OrgUnit{Code: "dev", Name: "Developer"}
	pmPos     = models.OrgUnit{Code: "pm", Name: "Product Manager"}
)

package seed

import (
	"aristobox/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultKits: каталог по умолчанию. Менять только вместе с клиентами:
// id и цены попадают в уже сохранённые заказы.
func DefaultKits() []models.Kit {
	return []models.Kit{
		{
			ID:            "bizwhiz_001",
			KitName:       "BizWhiz",
			Description:   "Complete Commerce Kit for Classes 11-12",
			TargetClasses: []int{11, 12},
			Subjects:      []string{"Business Studies", "Economics", "Accountancy"},
			Contents: []string{
				"Business Case Study Templates",
				"Economic Graphs & Charts",
				"Financial Calculator",
				"Balance Sheet Formats",
				"Market Research Tools",
				"Company Law Reference Guide",
			},
			Price:    decimal.NewFromInt(650),
			Category: models.KitCategoryCommerce,
			AgeGroup: models.AgeGroupSenior,
			IsActive: true,
		},
		{
			ID:            "mathultra_002",
			KitName:       "MathUltra",
			Description:   "Advanced Mathematics Tools & References",
			TargetClasses: []int{9, 10, 11, 12},
			Subjects:      []string{"Mathematics", "Statistics"},
			Contents: []string{
				"Scientific Calculator",
				"Geometric Instruments Set",
				"Trigonometric Tables",
				"Formula Reference Cards",
				"Graph Papers & Protractors",
				"Statistical Tables",
			},
			Price:    decimal.NewFromInt(480),
			Category: models.KitCategorySTEM,
			AgeGroup: models.AgeGroupSecondary,
			IsActive: true,
		},
		{
			ID:            "physiowound_003",
			KitName:       "PhysioWound",
			Description:   "Physics Laboratory Equipment Kit",
			TargetClasses: []int{8, 9, 10, 11, 12},
			Subjects:      []string{"Physics"},
			Contents: []string{
				"Digital Multimeter",
				"Spring Balance Set",
				"Measuring Cylinders",
				"Magnifying Glass",
				"Physics Formula Sheets",
				"Laboratory Manual",
			},
			Price:    decimal.NewFromInt(520),
			Category: models.KitCategorySTEM,
			AgeGroup: models.AgeGroupSecondary,
			IsActive: true,
		},
		{
			ID:            "chemdraw_004",
			KitName:       "ChemDraw",
			Description:   "Chemistry Laboratory & Reference Kit",
			TargetClasses: []int{8, 9, 10, 11, 12},
			Subjects:      []string{"Chemistry"},
			Contents: []string{
				"Periodic Table (Laminated)",
				"Test Tube Set (12 pieces)",
				"Litmus Paper Strips",
				"Chemical Formula Cards",
				"Safety Goggles",
				"Lab Manual & Instructions",
			},
			Price:    decimal.NewFromInt(550),
			Category: models.KitCategorySTEM,
			AgeGroup: models.AgeGroupSecondary,
			IsActive: true,
		},
		{
			ID:            "imagoclay_005",
			KitName:       "ImagoClay",
			Description:   "Arts & Crafts Creative Kit",
			TargetClasses: []int{1, 2, 3, 4, 5, 6},
			Subjects:      []string{"Arts", "Crafts"},
			Contents: []string{
				"Colored Clay Set",
				"Drawing Papers",
				"Crayons & Markers",
				"Craft Scissors",
				"Glue Sticks",
				"Creative Project Ideas",
			},
			Price:    decimal.NewFromInt(380),
			Category: models.KitCategoryArts,
			AgeGroup: models.AgeGroupPrimary,
			IsActive: true,
		},
		{
			ID:            "kidsplay_006",
			KitName:       "KidsPlay",
			Description:   "Primary Learning Fun Kit",
			TargetClasses: []int{1, 2, 3, 4, 5},
			Subjects:      []string{"General Learning"},
			Contents: []string{
				"Alphabet & Number Charts",
				"Educational Games",
				"Coloring Books",
				"Story Books",
				"Learning Toys",
				"Activity Worksheets",
			},
			Price:    decimal.NewFromInt(320),
			Category: models.KitCategoryPrimary,
			AgeGroup: models.AgeGroupPrimary,
			IsActive: true,
		},
	}
}

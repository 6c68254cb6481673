package catalog

import (
	"math/rand/v2"

	"github.com/abhisek/mathplay/internal/problemgen"
)

// Game ids with dedicated handling outside the table.
const (
	TowerBuilderID = "tower_builder"
)

// mathChoice builds arithmetic levels over the grade's operand range.
func mathChoice(op problemgen.Op, prompt string) BuildFunc {
	return func(rng *rand.Rand, scale Scale) problemgen.Level {
		return problemgen.MathChoice(rng, problemgen.MathChoiceParams{Range: scale.GradeRange(), Op: op, Prompt: prompt})
	}
}

// collection builds summation levels. PoolBound is per game and overrides
// the grade range.
func collection(p problemgen.CollectionParams) BuildFunc {
	return func(rng *rand.Rand, scale Scale) problemgen.Level {
		p := p
		p.PoolBound = scale.Of(p.PoolBound)
		return problemgen.Collection(rng, p)
	}
}

// seedGames returns the built-in catalog, ordered by grade.
func seedGames() []Descriptor {
	return []Descriptor{
		// Grade 1
		{
			ID: TowerBuilderID, Name: "Xếp Tháp Số", Icon: "🏰",
			Category: CategoryArithmetic, Kind: KindBuilder, Grade: 1,
			Rules:    "Xếp gạch sao cho tổng số tầng bằng mục tiêu.",
			Goal:     "Xây tháp chạm mây.",
			Example:  "Cần 5 tầng. Xếp khối 2 và 3.",
			Leveling: "Cộng phạm vi 10-20.",
			Theme:    "sky", Layout: LayoutTower,
		},
		{
			ID: "drag_calc", Name: "Kéo Thả Phép Tính", Icon: "🧩",
			Category: CategoryArithmetic, Kind: KindDragMatch, Grade: 1,
			Rules:    "Kéo số vào ô trống để hoàn thành phép tính.",
			Goal:     "Giải đố.",
			Example:  "7 + __ = 12. Kéo số 5.",
			Leveling: "Cộng trừ đơn giản.",
			Layout:   LayoutRow,
			Build:    mathChoice(problemgen.OpBlank, "Kéo số vào ô trống:"),
		},
		{
			ID: "farm_harvest", Name: "Thu Thập Nông Sản", Icon: "🥕",
			Category: CategoryArithmetic, Kind: KindCollection, Grade: 1,
			Rules:    "Thu hoạch đủ số lượng nông sản yêu cầu.",
			Goal:     "Làm nông dân giỏi.",
			Example:  "Cần 5 cà rốt. Chọn luống 2 và 3.",
			Leveling: "Cộng phạm vi 10.",
			Theme:    "farm", Layout: LayoutGrid,
			Build: collection(problemgen.CollectionParams{
				Items: []string{"🥕", "🍎", "🌽", "🍓"}, PoolBound: 8, Verb: "Thu hoạch",
			}),
		},
		{
			ID: "color_match", Name: "Bóng Màu Phép Tính", Icon: "🎨",
			Category: CategoryArithmetic, Kind: KindChoice, Grade: 1,
			Rules:    "Chọn bóng có màu và kết quả đúng.",
			Goal:     "Phân loại bóng.",
			Example:  "Bóng đỏ = 5. Chọn bóng đỏ.",
			Leveling: "Nhận biết màu và số.",
			Layout:   LayoutRow,
			Build: func(rng *rand.Rand, _ Scale) problemgen.Level {
				return problemgen.ColorMatch(rng)
			},
		},
		{
			ID: "fish_catch", Name: "Bắt Cá Đúng Số", Icon: "🐟",
			Category: CategoryArithmetic, Kind: KindComparison, Grade: 1,
			Rules:    "Chọn cá có số lớn hơn/nhỏ hơn theo yêu cầu.",
			Goal:     "Ngư dân tài ba.",
			Example:  "Bắt cá > 7.",
			Leveling: "So sánh số.",
			Theme:    "underwater", Layout: LayoutGrid,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.Fish(rng, problemgen.FishParams{Range: scale.GradeRange()})
			},
		},
		{
			ID: "gift_box", Name: "Đóng Hộp Quà", Icon: "🎁",
			Category: CategoryArithmetic, Kind: KindChoice, Grade: 1,
			Rules:    "Chọn nắp hộp có đáp án đúng.",
			Goal:     "Xưởng quà tặng.",
			Example:  "12 - 5 = ?. Chọn 7.",
			Leveling: "Phép trừ.",
			Layout:   LayoutRow,
			Build:    mathChoice(problemgen.OpSub, "Tìm đáp án để đóng hộp:"),
		},

		// Grade 2
		{
			ID: "path_finder", Name: "Chọn Đường Đi Đúng", Icon: "🗺️",
			Category: CategoryLogic, Kind: KindChoice, Grade: 2,
			Rules:    "Chọn ngã rẽ có kết quả đúng.",
			Goal:     "Đi xuyên rừng.",
			Example:  "Rẽ trái (5+5) hay phải (2+3) để được 10?",
			Leveling: "Cộng trừ có nhớ.",
			Theme:    "forest", Layout: LayoutGrid,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.PathFinder(rng, problemgen.PathParams{Range: scale.GradeRange()})
			},
		},
		{
			ID: "puzzle_sum", Name: "Puzzle Toán Học", Icon: "🧩",
			Category: CategoryArithmetic, Kind: KindChoice, Grade: 2,
			Rules:    "Giải phép tính để mở mảnh ghép.",
			Goal:     "Hoàn thiện tranh.",
			Example:  "3 x 4 = ?. Chọn 12.",
			Leveling: "Phép nhân cơ bản.",
			Layout:   LayoutGrid,
			Build:    mathChoice(problemgen.OpMul, "Mảnh ghép nào đúng?"),
		},
		{
			ID: "balance_scale", Name: "Cân Bằng Hai Bên", Icon: "⚖️",
			Category: CategoryLogic, Kind: KindChoice, Grade: 2,
			Rules:    "Chọn số để cân bằng hai bên.",
			Goal:     "Giữ thăng bằng.",
			Example:  "Trái: 3+4. Phải: __+2. Chọn 5.",
			Leveling: "Biểu thức đơn giản.",
			Layout:   LayoutRow,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.Balance(rng, problemgen.BalanceParams{Weight: scale.GradeRange()})
			},
		},
		{
			ID: "bridge_builder", Name: "Xây Cầu Bằng Số", Icon: "🔨",
			Category: CategoryGeometry, Kind: KindCollection, Grade: 2,
			Rules:    "Đặt khối số vào chỗ trống để cầu liền mạch.",
			Goal:     "Qua sông.",
			Example:  "__ + 4 = 9. Chọn 5.",
			Leveling: "Tìm số hạng.",
			Theme:    "river", Layout: LayoutStack,
			Build: collection(problemgen.CollectionParams{
				Items: []string{"🪵", "🪵", "🪨"}, PoolBound: 10, Verb: "Xây cầu dài", Unit: "m", Bridge: true,
			}),
		},
		{
			ID: "bubble_pop", Name: "Bắn Bóng Số", Icon: "🎯",
			Category: CategoryArithmetic, Kind: KindChoice, Grade: 2,
			Rules:    "Bắn bóng tạo thành tổng đúng.",
			Goal:     "Xạ thủ.",
			Example:  "Tổng 15. Bắn 6 và 9.",
			Leveling: "Phản xạ nhanh.",
			Layout:   LayoutGrid,
			Build:    mathChoice(problemgen.OpSum, "Bắn bóng có tổng đúng!"),
		},

		// Grade 3
		{
			ID: "matrix_run", Name: "Ma Trận Số", Icon: "🔢",
			Category: CategoryLogic, Kind: KindChoice, Grade: 3,
			Rules:    "Chọn ô số tiếp theo theo quy luật để tìm đường.",
			Goal:     "Thoát ma trận.",
			Example:  "5 + __ = 9. Chọn 4.",
			Leveling: "Logic tìm đường.",
			Layout:   LayoutGrid,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.Sequence(rng, problemgen.SequenceParams{Kind: problemgen.SeqAdd, StartMax: scale.Of(5), StepMax: 4})
			},
		},
		{
			ID: "collect_upgrade", Name: "Siêu Thị Nâng Cấp", Icon: "🛒",
			Category: CategoryArithmetic, Kind: KindCollection, Grade: 3,
			Rules:    "Thu thập vật phẩm để nâng cấp nhân vật.",
			Goal:     "Mua sắm.",
			Example:  "Mua 3 món giá 5đ.",
			Leveling: "Nhân chia.",
			Theme:    "shop", Layout: LayoutGrid,
			Build: collection(problemgen.CollectionParams{
				Items: []string{"💎", "🛡️", "⚔️"}, PoolBound: 50, Verb: "Mua trang bị", Unit: "vàng", Priced: true,
			}),
		},
		{
			ID: "treasure_hunt", Name: "Tìm Kho Báu", Icon: "🧭",
			Category: CategoryLogic, Kind: KindChoice, Grade: 3,
			Rules:    "Giải phép tính để định hướng đi.",
			Goal:     "Tìm rương vàng.",
			Example:  "Đi lên (6+3) hay xuống (10-2)?",
			Leveling: "Định hướng.",
			Theme:    "island", Layout: LayoutRow,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.Comparison(rng, problemgen.ComparisonParams{Range: scale.GradeRange()})
			},
		},

		// Grade 4
		{
			ID: "ladder_climb", Name: "Bắc Thang Quy Luật", Icon: "🪜",
			Category: CategoryLogic, Kind: KindSequence, Grade: 4,
			Rules:    "Điền số vào dãy quy luật để leo thang.",
			Goal:     "Leo núi.",
			Example:  "2, 4, 6, __. Chọn 8.",
			Leveling: "Dãy số.",
			Theme:    "mountain", Layout: LayoutStack,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.Sequence(rng, problemgen.SequenceParams{Kind: problemgen.SeqMul, StepMax: scale.Of(6)})
			},
		},
		{
			ID: "bridge_advanced", Name: "Xây Cầu Liên Hoàn", Icon: "🌉",
			Category: CategoryLogic, Kind: KindCollection, Grade: 4,
			Rules:    "Xây cầu bằng chuỗi phép tính.",
			Goal:     "Kiến trúc sư.",
			Example:  "( __ x 3 ) + 2 = 14. Chọn 4.",
			Leveling: "Biểu thức phức tạp.",
			Theme:    "river", Layout: LayoutStack,
			Build: collection(problemgen.CollectionParams{
				Items: []string{"🏗️", "🧱"}, PoolBound: 100, Verb: "Xây cầu lớn", Unit: "m", Bridge: true,
			}),
		},

		// Grade 5
		{
			ID: "maze_calc", Name: "Mê Cung Phép Tính", Icon: "🌀",
			Category: CategoryLogic, Kind: KindChoice, Grade: 5,
			Rules:    "Giải phương trình để mở cửa mê cung.",
			Goal:     "Thoát hiểm.",
			Example:  "2a + 3b = 17.",
			Leveling: "Tư duy đại số.",
			Theme:    "maze", Layout: LayoutGrid,
			Build: func(rng *rand.Rand, scale Scale) problemgen.Level {
				return problemgen.Equation(rng, problemgen.EquationParams{XMax: scale.Of(10)})
			},
		},
	}
}

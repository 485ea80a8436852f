package catalog

import "github.com/evandrarf/promptquest-be/internal/delivery/http/entity"

var balancedCriteria = entity.EvaluationCriteria{Clarity: 25, Specificity: 25, Context: 25, Creativity: 25}

var defaultQuests = []entity.Quest{
	// ==================== TIER 1 ====================
	{
		ID:          "q-distracted-student",
		Title:       "산만한 학생 대응",
		Description: "수업 중 계속 태블릿으로 게임을 하는 학생을 도와주세요",
		Scenario:    "학생 A는 매 수업시간마다 태블릿으로 게임을 합니다. 다른 학생들에게도 영향을 주고 있어 대책이 필요합니다. AI가 이 상황을 해결할 수 있도록 적절한 프롬프트를 작성해주세요.",
		Difficulty:  entity.DifficultyTier1,
		Category:    "학급 관리",
		Problems: []entity.Problem{{
			Question: "수업 시간에 태블릿 게임을 하는 학생에게 어떻게 대응해야 할까요?",
			Context:  "초등학교 5학년 교실, 태블릿을 수업 도구로 사용하는 환경",
			Hints: []string{
				"학생의 학년과 상황을 구체적으로 적어보세요",
				"원하는 해결책의 개수나 형태를 정해보세요",
				"학생의 흥미를 수업 참여로 연결하는 방법을 물어보세요",
			},
			EvaluationCriteria: balancedCriteria,
			SampleAnswer:       "초등학교 5학년 수업 시간에 태블릿 게임을 하는 학생이 있습니다. 게임을 좋아하는 학생의 흥미를 수업 참여로 연결할 수 있는 구체적인 지도 방법 3가지를 단계별로 제안해주세요. 각 방법의 실행 예시도 함께 알려주세요.",
		}},
	},
	{
		ID:          "q-homework-notice",
		Title:       "숙제 안내문 작성",
		Description: "학생들이 이해하기 쉬운 숙제 안내문이 필요합니다",
		Scenario:    "주말 숙제를 안내해야 하는데 지난번 안내문이 너무 길어서 학생들이 제대로 읽지 않았습니다. 짧고 명확한 안내문을 만들고 싶습니다.",
		Difficulty:  entity.DifficultyTier1,
		Category:    "상담 및 소통",
		Problems: []entity.Problem{{
			Question: "학생들이 끝까지 읽는 숙제 안내문을 어떻게 만들 수 있을까요?",
			Context:  "초등학교 3학년, 주말 독서 숙제 안내",
			Hints: []string{
				"안내문의 분량과 형식을 정해주세요",
				"대상 학년을 밝혀주세요",
			},
			EvaluationCriteria: entity.EvaluationCriteria{Clarity: 40, Specificity: 30, Context: 20, Creativity: 10},
			SampleAnswer:       "초등학교 3학년 학생들에게 주말 독서 숙제를 안내하는 글을 5문장 이내로 작성해주세요. 학생들의 흥미를 끌 수 있도록 친근한 말투를 사용하고, 준비물과 제출 방법을 단계별로 정리해주세요.",
		}},
	},
	{
		ID:          "q-morning-routine",
		Title:       "아침 활동 만들기",
		Description: "등교 후 10분을 알차게 보낼 활동이 필요합니다",
		Scenario:    "아침 등교 후 1교시 전까지 학생들이 떠들거나 휴대폰을 보며 시간을 보냅니다. 짧지만 의미 있는 아침 활동을 운영하고 싶습니다.",
		Difficulty:  entity.DifficultyTier1,
		Category:    "학급 관리",
		Problems: []entity.Problem{{
			Question: "등교 후 10분 동안 할 수 있는 아침 활동은 무엇이 있을까요?",
			Context:  "중학교 1학년 학급, 매일 아침 10분 자율 시간",
			Hints: []string{
				"활동 시간과 인원을 명확히 적어보세요",
				"몇 가지 활동을 원하는지 정해보세요",
			},
			EvaluationCriteria: balancedCriteria,
			SampleAnswer:       "중학교 1학년 학생들이 등교 후 10분 동안 할 수 있는 아침 활동 5가지를 추천해주세요. 학생들의 참여를 높일 수 있는 게임 요소를 포함하고, 활동별 준비물과 진행 방법을 예시와 함께 설명해주세요.",
		}},
	},

	// ==================== TIER 2 ====================
	{
		ID:          "q-parent-meeting",
		Title:       "학부모 상담 준비",
		Description: "학부모와의 상담을 위한 자료를 준비해야 합니다",
		Scenario:    "다음 주에 학부모 상담이 예정되어 있습니다. 학생의 학습 상황과 개선 방안에 대해 구체적이고 건설적인 이야기를 나누고 싶습니다. AI가 상담 내용을 준비할 수 있도록 프롬프트를 작성해주세요.",
		Difficulty:  entity.DifficultyTier2,
		Category:    "상담 및 소통",
		Problems: []entity.Problem{{
			Question: "학부모 상담에서 학생의 학습 상황을 어떻게 전달하면 좋을까요?",
			Context:  "수학 성적이 떨어진 초등학교 6학년 학생의 학부모 상담",
			Hints: []string{
				"학생의 현재 상황을 수치나 사례로 제시해보세요",
				"상담의 목표를 분명히 해보세요",
				"가정에서 실천할 수 있는 방안을 요청해보세요",
			},
			EvaluationCriteria: entity.EvaluationCriteria{Clarity: 25, Specificity: 30, Context: 30, Creativity: 15},
			SampleAnswer:       "초등학교 6학년 학생의 수학 성적이 한 학기 동안 떨어졌습니다. 학부모 상담에서 학생의 강점과 보완할 점을 균형 있게 전달하는 대화 흐름을 만들어주세요. 가정에서 실천할 수 있는 학습 지도 방법 3가지도 함께 제안해주세요.",
		}},
	},
	{
		ID:          "q-group-conflict",
		Title:       "모둠 활동 갈등 조정",
		Description: "모둠 활동 중 무임승차 문제로 갈등이 생겼습니다",
		Scenario:    "과학 모둠 프로젝트에서 한 학생이 참여하지 않아 다른 학생들이 불만을 표현하고 있습니다. 공정하면서도 모두가 참여하는 모둠 운영 방법이 필요합니다.",
		Difficulty:  entity.DifficultyTier2,
		Category:    "학급 관리",
		Problems: []entity.Problem{{
			Question: "모둠 활동에서 참여하지 않는 학생 문제를 어떻게 해결할까요?",
			Context:  "중학교 2학년 과학 모둠 프로젝트, 4인 1모둠",
			Hints: []string{
				"역할 분담 방식에 대해 물어보세요",
				"평가 방법까지 함께 요청해보세요",
			},
			EvaluationCriteria: balancedCriteria,
			SampleAnswer:       "중학교 2학년 과학 모둠 프로젝트에서 참여하지 않는 학생이 있어 갈등이 생겼습니다. 모든 학생의 참여를 이끌어낼 수 있는 역할 분담 방법과 동료 평가 활동을 단계별로 설명해주세요.",
		}},
	},
	{
		ID:          "q-rubric",
		Title:       "평가 루브릭 만들기",
		Description: "글쓰기 수행평가 루브릭이 필요합니다",
		Scenario:    "국어 시간에 논설문 쓰기 수행평가를 합니다. 학생들이 미리 평가 기준을 이해할 수 있도록 명확한 루브릭을 공개하고 싶습니다.",
		Difficulty:  entity.DifficultyTier2,
		Category:    "평가",
		Problems: []entity.Problem{{
			Question: "논설문 쓰기 수행평가 루브릭을 어떻게 구성할까요?",
			Context:  "고등학교 1학년 국어, 논설문 수행평가 20점 만점",
			Hints: []string{
				"평가 영역과 단계 수를 정해주세요",
				"학생용 표현으로 써달라고 요청해보세요",
			},
			EvaluationCriteria: entity.EvaluationCriteria{Clarity: 30, Specificity: 40, Context: 20, Creativity: 10},
			SampleAnswer:       "고등학교 1학년 국어 논설문 쓰기 수행평가를 위한 루브릭을 만들어주세요. 주장, 근거, 구성, 표현의 4가지 영역을 각각 3단계로 나누고, 학생들이 이해하기 쉬운 표현과 예시를 포함해주세요.",
		}},
	},

	// ==================== TIER 3 ====================
	{
		ID:          "q-creative-lesson",
		Title:       "창의적 수업 활동 기획",
		Description: "지루한 수업을 흥미롭게 만들 방법이 필요합니다",
		Scenario:    "이번 주 과학 시간에 '물질의 상태 변화'를 다룰 예정입니다. 학생들이 지루해하지 않고 적극적으로 참여할 수 있는 창의적인 활동을 기획하고 싶습니다. AI가 도움을 줄 수 있도록 프롬프트를 작성해주세요.",
		Difficulty:  entity.DifficultyTier3,
		Category:    "수업 설계",
		Problems: []entity.Problem{{
			Question: "물질의 상태 변화 수업을 어떻게 흥미롭게 만들 수 있을까요?",
			Context:  "초등학교 4학년 과학, 물질의 상태 변화 단원 40분 수업",
			Hints: []string{
				"수업 시간과 학년을 알려주세요",
				"실험, 게임 등 원하는 활동 형태를 정해보세요",
				"활동의 개수와 평가 방법을 요청해보세요",
			},
			EvaluationCriteria: entity.EvaluationCriteria{Clarity: 20, Specificity: 25, Context: 20, Creativity: 35},
			SampleAnswer:       "초등학교 4학년 과학 '물질의 상태 변화' 단원 40분 수업을 위해 학생들의 흥미와 참여를 높일 수 있는 창의적인 활동 3가지를 제안해주세요. 각 활동의 준비물, 진행 단계, 예상되는 학습 효과를 함께 설명해주세요.",
		}},
	},
	{
		ID:          "q-multicultural",
		Title:       "다문화 학생 적응 지원",
		Description: "한국어가 서툰 전학생의 적응을 돕고 싶습니다",
		Scenario:    "베트남에서 온 전학생이 한국어가 서툴러 수업과 친구 관계에 어려움을 겪고 있습니다. 학급 전체가 함께 도울 수 있는 방법을 찾고 있습니다.",
		Difficulty:  entity.DifficultyTier3,
		Category:    "학생 지원",
		Problems: []entity.Problem{{
			Question: "한국어가 서툰 다문화 전학생의 적응을 어떻게 도울 수 있을까요?",
			Context:  "초등학교 3학년, 베트남 출신 전학생, 한국어 기초 수준",
			Hints: []string{
				"학생의 언어 수준을 구체적으로 적어보세요",
				"학급 친구들의 역할도 함께 물어보세요",
				"기간별 계획을 요청해보세요",
			},
			EvaluationCriteria: entity.EvaluationCriteria{Clarity: 20, Specificity: 30, Context: 35, Creativity: 15},
			SampleAnswer:       "초등학교 3학년 학급에 한국어 기초 수준의 베트남 출신 전학생이 왔습니다. 첫 4주 동안 학급 친구들과 함께 실천할 수 있는 적응 지원 활동을 주차별 단계로 제안하고, 수업 시간에 활용할 수 있는 시각 자료 예시도 알려주세요.",
		}},
	},
	{
		ID:          "q-project-learning",
		Title:       "프로젝트 수업 설계",
		Description: "교과 융합 프로젝트 수업을 설계해야 합니다",
		Scenario:    "사회와 미술을 융합한 4주 프로젝트 수업을 처음 운영합니다. 학생들이 스스로 주제를 탐구하고 결과물을 발표하는 흐름을 만들고 싶습니다.",
		Difficulty:  entity.DifficultyTier3,
		Category:    "수업 설계",
		Problems: []entity.Problem{{
			Question: "사회와 미술 융합 프로젝트 수업을 어떻게 설계할까요?",
			Context:  "중학교 3학년, 사회·미술 융합 4주 프로젝트, 주 2차시",
			Hints: []string{
				"주차별 목표를 요청해보세요",
				"결과물과 평가 기준을 함께 물어보세요",
			},
			EvaluationCriteria: balancedCriteria,
			SampleAnswer:       "중학교 3학년 사회와 미술을 융합한 4주 프로젝트 수업을 설계해주세요. 주 2차시 기준으로 주차별 학습 목표, 학생 활동, 결과물 예시를 단계별로 정리하고, 발표 평가 기준 3가지도 제안해주세요.",
		}},
	},
}

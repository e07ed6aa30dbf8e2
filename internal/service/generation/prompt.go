package generation

import "fmt"

// buildPrompt returns the instruction sent to the model for date.
// The reply is expected to be a single JSON object, optionally fenced.
func buildPrompt(date string) string {
	return fmt.Sprintf(`오늘 날짜: %s

당신은 마케팅 트렌드 전문가입니다. 주니어 마케터와 마케팅 전공 대학생을 위한 실용적인 트렌드 인사이트 1개를 생성해주세요.

## 조건
1. **시의성**: 최근 2주 내에 나타난 실제 마케팅/소비자 트렌드 기반
2. **구체성**: 추상적이지 않고, 특정 현상이나 사례를 언급
3. **실용성**: 마케터가 바로 업무에 적용하거나 참고할 수 있어야 함
4. **신선함**: 이미 널리 알려진 뻔한 내용이 아닌, 새로운 관점 제시

## 참고할 트렌드 소스
- 소셜 미디어 마케팅 변화
- Z세대/알파세대 소비 행동
- 브랜드 커뮤니케이션 전략
- 콘텐츠 포맷 트렌드
- 이커머스/리테일 혁신
- AI/기술이 마케팅에 미치는 영향

## 응답 형식 (반드시 JSON으로만 응답)
`+"```json"+`
{
  "insight_text": "핵심 인사이트를 1-2문장으로 명확하게 작성. 인용구 스타일로 기억에 남게 작성.",
  "keywords": [
    {"keyword": "키워드1", "description": "이 키워드가 왜 중요한지 1문장 설명"},
    {"keyword": "키워드2", "description": "이 키워드가 왜 중요한지 1문장 설명"},
    {"keyword": "키워드3", "description": "이 키워드가 왜 중요한지 1문장 설명"}
  ],
  "context": "왜 지금 이 트렌드가 중요한지 배경과 맥락을 2-3문장으로 설명. 가능하면 데이터나 사례 언급.",
  "question": "이 인사이트를 바탕으로 마케터가 자신의 브랜드에 적용할 때 고민해볼 질문"
}
`+"```"+`

JSON 형식으로만 응답하세요. 다른 텍스트는 포함하지 마세요.`, date)
}

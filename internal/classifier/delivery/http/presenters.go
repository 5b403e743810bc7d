package http

import "engagement-srv/internal/classifier"

// =====================================================
// Request DTOs
// =====================================================

type classifyReq struct {
	Content string `json:"content" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type classifyResp struct {
	Type              string   `json:"type"`
	ImpressionScore   int      `json:"impression_score"`
	ExpressionScore   int      `json:"expression_score"`
	Confidence        float64  `json:"confidence"`
	MatchedImpression []string `json:"matched_impression"`
	MatchedExpression []string `json:"matched_expression"`
	Advice            string   `json:"advice"`
}

func newClassifyResp(out classifier.ClassifyOutput) classifyResp {
	return classifyResp{
		Type:              string(out.Type),
		ImpressionScore:   out.ImpressionScore,
		ExpressionScore:   out.ExpressionScore,
		Confidence:        out.Confidence,
		MatchedImpression: out.MatchedImpression,
		MatchedExpression: out.MatchedExpression,
		Advice:            out.Advice,
	}
}

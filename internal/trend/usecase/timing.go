package usecase

import "engagement-srv/internal/model"

// optimalTimings are static per-platform posting windows.
var optimalTimings = map[model.Platform][]model.OptimalPostTiming{
	model.PlatformTwitter: {
		{DayLabel: "平日", Hours: []int{7, 8, 12, 21, 22}, Reason: "通勤時間と昼休み、就寝前にタイムライン閲覧が集中する。"},
		{DayLabel: "週末", Hours: []int{10, 20, 21}, Reason: "週末は朝がゆっくりで、夜のまとめ見が多い。"},
	},
	model.PlatformInstagram: {
		{DayLabel: "平日", Hours: []int{12, 19, 20, 21}, Reason: "昼休みと帰宅後のリラックスタイムに閲覧が伸びる。"},
		{DayLabel: "週末", Hours: []int{11, 15, 21}, Reason: "外出の合間と夜に保存・いいねが付きやすい。"},
	},
	model.PlatformTikTok: {
		{DayLabel: "平日", Hours: []int{17, 19, 21, 22}, Reason: "夕方から夜にかけてレコメンド消化が最も活発。"},
		{DayLabel: "週末", Hours: []int{13, 20, 22}, Reason: "週末午後の暇つぶし視聴と夜の長時間視聴が狙い目。"},
	},
}

func timingsFor(p model.Platform) []model.OptimalPostTiming {
	timings := make([]model.OptimalPostTiming, 0, len(optimalTimings[p]))
	for _, t := range optimalTimings[p] {
		t.Platform = p
		timings = append(timings, t)
	}
	return timings
}

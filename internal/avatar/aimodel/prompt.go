package aimodel

import (
	"fmt"
	"strings"

	"shenfen/internal/avatar"
	"shenfen/internal/identity/models"
)

// clothingOptions are the outfits a portrait may wear. The pick is seeded,
// so repeated renders of one identity dress identically.
var clothingOptions = []string{
	"白色衬衫",
	"浅灰色圆领针织衫",
	"深色西装外套配白色内衬",
	"藏青色立领夹克",
	"浅蓝色衬衫",
	"校服",
}

var ageBucketZh = map[avatar.AgeBucket]string{
	avatar.AgeBucketChild:      "儿童",
	avatar.AgeBucketTeen:       "少年",
	avatar.AgeBucketYoungAdult: "青年",
	avatar.AgeBucketAdult:      "中年",
	avatar.AgeBucketSenior:     "老年",
}

// buildPrompt phrases the generation request in Chinese: the subject, the
// framing constraints the card's portrait window assumes, optional physique
// hints and the clothing pick.
func buildPrompt(req avatar.Request) string {
	var b strings.Builder

	subject := ageBucketZh[req.AgeBucket]
	if subject == "" {
		subject = ageBucketZh[avatar.AgeBucketAdult]
	}
	switch req.Gender {
	case models.GenderMale:
		subject += "男性"
	case models.GenderFemale:
		subject += "女性"
	}

	fmt.Fprintf(&b, "中国居民证件照：一位中国%s的正面免冠半身像。", subject)
	b.WriteString("头部居中位于画面上部，头顶上方留白不超过画面高度的百分之八，双肩完整可见，正视镜头，表情自然。")
	b.WriteString("纯白色背景，均匀柔和的影棚灯光，照片写实风格。")

	if req.HeightCM > 0 {
		fmt.Fprintf(&b, "身高约%d厘米。", req.HeightCM)
	}
	if req.WeightKG > 0 {
		fmt.Fprintf(&b, "体重约%d公斤。", req.WeightKG)
	}
	fmt.Fprintf(&b, "着装：%s。", clothingFor(req.Seed))
	b.WriteString("画面真实自然，内容合规，适合证件用途。")

	return b.String()
}

func clothingFor(seed int64) string {
	idx := seed % int64(len(clothingOptions))
	if idx < 0 {
		idx += int64(len(clothingOptions))
	}
	return clothingOptions[idx]
}

package domino

const (
	OperateNone = -1
	OperatePass = 0
	OperatePlay = 1 << iota // 出牌
	OperateDraw             // 摸牌
)

var OperateNames = map[int]string{
	OperatePass: "Pass",
	OperatePlay: "Play",
	OperateDraw: "Draw",
}

var OperateIDs = map[string]int{
	"Pass": OperatePass,
	"Play": OperatePlay,
	"Draw": OperateDraw,
}

func GetOperateName(operate int) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}

func GetOperateID(name string) int {
	if id, ok := OperateIDs[name]; ok {
		return id
	}
	return OperateNone
}

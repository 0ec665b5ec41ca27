package domino

import (
	"github.com/sirupsen/logrus"
)

type EventType int32

const (
	EventRoundStart EventType = iota
	EventPlay
	EventDraw
	EventPass
	EventRoundWin
	EventRoundBlocked
	EventScores
	EventGameOver
)

var EventNames = map[EventType]string{
	EventRoundStart:   "RoundStart",
	EventPlay:         "Play",
	EventDraw:         "Draw",
	EventPass:         "Pass",
	EventRoundWin:     "RoundWin",
	EventRoundBlocked: "RoundBlocked",
	EventScores:       "Scores",
	EventGameOver:     "GameOver",
}

// Event 对局过程通知, 仅供宿主展示, 引擎逻辑不依赖其是否被消费
type Event struct {
	Type   EventType
	Seat   int32
	Tile   Tile
	End    End
	Points int64
	Scores []int64
	Layout string
	Rest   int32
}

type EventSink interface {
	OnEvent(ev *Event)
}

type NopSink struct{}

func (NopSink) OnEvent(*Event) {}

// LogSink 把对局事件写进日志
type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) OnEvent(ev *Event) {
	s.log.Infof("%s seat=%d tile=%s points=%d layout=%s scores=%v",
		EventNames[ev.Type], ev.Seat, GetTileName(ev.Tile), ev.Points, ev.Layout, ev.Scores)
}

// Sender 对局事件发射器
type Sender struct {
	game *Game
	sink EventSink
}

func NewSender(game *Game, sink EventSink) *Sender {
	return &Sender{
		game: game,
		sink: sink,
	}
}

func (s *Sender) SendRoundStart(play *Play) {
	s.sink.OnEvent(&Event{
		Type:   EventRoundStart,
		Seat:   play.GetStarter(),
		Tile:   play.GetOpenTile(),
		Scores: s.game.GetCurScores(),
		Rest:   play.GetDealer().GetRestCount(),
	})
}

func (s *Sender) SendPlay(seat int32, tile Tile, end End, play *Play) {
	s.sink.OnEvent(&Event{
		Type:   EventPlay,
		Seat:   seat,
		Tile:   tile,
		End:    end,
		Layout: play.GetBoard().LayoutString(),
	})
}

func (s *Sender) SendDraw(seat int32, tile Tile, play *Play) {
	s.sink.OnEvent(&Event{
		Type: EventDraw,
		Seat: seat,
		Tile: tile,
		Rest: play.GetDealer().GetRestCount(),
	})
}

func (s *Sender) SendPass(seat int32) {
	s.sink.OnEvent(&Event{
		Type: EventPass,
		Seat: seat,
		Tile: TileNull,
	})
}

func (s *Sender) SendRoundWin(seat int32, points int64) {
	s.sink.OnEvent(&Event{
		Type:   EventRoundWin,
		Seat:   seat,
		Tile:   TileNull,
		Points: points,
	})
}

func (s *Sender) SendRoundBlocked(winner int32, points int64) {
	s.sink.OnEvent(&Event{
		Type:   EventRoundBlocked,
		Seat:   winner,
		Tile:   TileNull,
		Points: points,
	})
}

func (s *Sender) SendScores() {
	s.sink.OnEvent(&Event{
		Type:   EventScores,
		Seat:   SeatNull,
		Tile:   TileNull,
		Scores: s.game.GetCurScores(),
	})
}

func (s *Sender) SendGameOver(winner int32) {
	s.sink.OnEvent(&Event{
		Type:   EventGameOver,
		Seat:   winner,
		Tile:   TileNull,
		Scores: s.game.GetCurScores(),
	})
}

package domino

import (
	"github.com/sirupsen/logrus"
)

type IState interface {
	OnEnter()
}

// SetupState 开局: 洗牌发牌定先手并打出首张
type SetupState struct {
	game *Game
}

func NewSetupState(g *Game, args ...any) IState {
	return &SetupState{game: g}
}

func (s *SetupState) OnEnter() {
	play := NewPlay(s.game, s.game.variant, s.game.dealer)
	s.game.play = play
	if err := play.Initialize(); err != nil {
		logrus.Errorf("round setup failed: %v", err)
		return
	}
	s.game.roundCount++
	s.game.sender.SendRoundStart(play)
	if err := play.PlayOpening(); err != nil {
		logrus.Errorf("opening play failed: %v", err)
		return
	}
	s.game.SetNextState(NewTurnState)
}

// TurnState 当前座位的一次行动, 之后检查胜负与僵局
type TurnState struct {
	game *Game
}

func NewTurnState(g *Game, args ...any) IState {
	return &TurnState{game: g}
}

func (s *TurnState) OnEnter() {
	play := s.game.play
	play.PlayTurn()

	if play.IsRoundWon() {
		s.game.SetNextState(NewResultState, ResolveWin)
		return
	}
	if play.IsBlocked() {
		s.game.SetNextState(NewResultState, ResolveBlocked)
		return
	}
	play.DoSwitchSeat(SeatNull)
	s.game.SetNextState(NewTurnState)
}

// ResultState 一局结算, 积分未达标则继续下一局
type ResultState struct {
	game   *Game
	reason int
}

func NewResultState(g *Game, args ...any) IState {
	s := &ResultState{game: g}
	if len(args) > 0 {
		if reason, ok := args[0].(int); ok {
			s.reason = reason
		}
	}
	return s
}

func (s *ResultState) OnEnter() {
	play := s.game.play
	var winner int32
	var points int64
	if s.reason == ResolveBlocked {
		winner, points = s.game.scorelator.AwardBlocked(play)
		s.game.sender.SendRoundBlocked(winner, points)
	} else {
		winner = play.GetCurSeat()
		points = s.game.scorelator.AwardWin(play, winner)
		s.game.sender.SendRoundWin(winner, points)
	}
	s.game.GetPlayer(winner).AddRoundWin()
	s.game.sender.SendScores()

	if s.game.hasWinner() {
		s.game.sender.SendGameOver(s.game.GetWinner().GetSeat())
		return
	}
	s.game.SetNextState(NewSetupState)
}

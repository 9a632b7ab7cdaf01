package render

import (
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/1siamBot/pixelcity/engine/agent"
	"github.com/1siamBot/pixelcity/engine/geometry"
	"github.com/1siamBot/pixelcity/engine/sprite"
)

// RobotStage draws every agent, lower baselines in front
type RobotStage struct {
	order []*agent.Agent
}

func (s *RobotStage) Layer() Layer { return LayerAgents }

func (s *RobotStage) Draw(f *Frame) {
	s.order = append(s.order[:0], f.Agents...)
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.order[i].Baseline() < s.order[j].Baseline()
	})
	for _, a := range s.order {
		DrawRobot(f.Surface, a, f.Now)
	}
}

// DrawRobot paints the agent's sprite and then its role overlay
func DrawRobot(surf *Surface, a *agent.Agent, now time.Duration) {
	DrawSprite(surf, a, now)
	DrawOverlay(surf, a, now)
}

// DrawSprite paints the current pose cell by cell. Every write lands inside
// a.Bounds(now); cells whose class the palette lacks are skipped.
func DrawSprite(surf *Surface, a *agent.Agent, now time.Duration) {
	def := a.Sprite()
	if def == nil {
		return
	}
	box := a.Bounds(now)
	cell := a.Scale
	mirror := a.Mirrored()
	for row := 0; row < def.Rows(); row++ {
		for col := 0; col < def.Cols(); col++ {
			pc := def.At(col, row)
			if pc == sprite.Clear {
				continue
			}
			clr, ok := a.Palette.Color(pc)
			if !ok {
				continue
			}
			dc := col
			if mirror {
				dc = def.Cols() - 1 - col
			}
			surf.FillBox(
				box.X+float64(dc)*cell, box.Y+float64(row)*cell,
				box.X+float64(dc+1)*cell, box.Y+float64(row+1)*cell,
				clr,
			)
		}
	}
}

// overlayPen draws rectangles laid out for a right-facing robot, flipping
// them about the sprite box when the robot is mirrored.
type overlayPen struct {
	surf   *Surface
	box    geometry.Rect
	mirror bool
}

func (p overlayPen) rect(x, y, w, h float64, clr color.Color) {
	if p.mirror {
		x = 2*p.box.X + p.box.W - x - w
	}
	p.surf.FillRect(x, y, w, h, clr)
}

// DrawOverlay paints the role tool next to the robot
func DrawOverlay(surf *Surface, a *agent.Agent, now time.Duration) {
	box := a.Bounds(now)
	p := overlayPen{surf: surf, box: box, mirror: a.Mirrored()}
	x, y, w, h := box.X, box.Y, box.W, box.H
	ms := millis(now)

	switch a.Role {
	case sprite.RoleCleaner:
		p.rect(x-4, y+h-2, 3, 8, sprite.BroomHandle)
		p.rect(x-6, y+h+6, 7, 3, sprite.BroomHead)

	case sprite.RolePlumber:
		p.rect(x+w+2, y+h-10, 10, 4, sprite.PipeColor)
		p.rect(x+w+8, y+h-6, 4, 10, sprite.PipeColor)
		drip := math.Abs(math.Sin(ms*0.005+a.Phase)) * 6
		p.rect(x+w+10, y+h-6+drip, 2, 3, sprite.WaterColor)

	case sprite.RoleCoder:
		sx, sy := x+w+4, y+4
		p.rect(sx, sy, 18, 14, sprite.ScreenColor)
		glow := (math.Sin(ms*0.006+a.Phase) + 1) / 2
		p.rect(sx+2, sy+3, 14, 6, Alpha(sprite.GlowColor, 0.4+glow*0.4))
		if CodeLineVisible(now, a.Phase) {
			p.rect(sx+3, sy+11, 10, 2, sprite.CodeColor)
		}

	case sprite.RoleWorker:
		if a.State == agent.Working {
			pulse := (math.Sin(ms*0.02+a.Phase) + 1) / 2
			p.rect(x+w, y+h*0.4-1, 3, 3, Alpha(sprite.TorchColor, 0.5+0.5*pulse))
		}

	case sprite.RoleDrone:
		if int(math.Floor(ms/500+a.Phase))%2 == 0 {
			p.rect(x+w/2-1, y-2, 2, 2, sprite.BeaconColor)
		}
	}
}

// CodeLineVisible is the coder cursor blink: 400 ms on, 400 ms off, with
// the phase shifting the cycle.
func CodeLineVisible(now time.Duration, phase float64) bool {
	return int(math.Floor(millis(now)/400+phase/math.Pi))%2 == 0
}

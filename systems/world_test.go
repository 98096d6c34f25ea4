package systems

import (
	"testing"

	"github.com/spinyflannel/society/components"
	cfg "github.com/spinyflannel/society/config"
	"github.com/spinyflannel/society/rig"
	"github.com/spinyflannel/society/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	return e
}

func TestKeepsakeCollection(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 400, "dazie")
	keepsake := factory.CreateKeepsake(e, 102, 410)

	UpdateCollisions(e)

	playerData := components.Player.Get(player)
	if playerData.Keepsakes != 1 {
		t.Fatalf("Keepsakes = %d, want 1", playerData.Keepsakes)
	}
	if keepsake.Valid() {
		t.Error("collected keepsake entity should be removed")
	}
	animator := components.Rig.Get(player).Animator
	if !animator.IsReacting() || animator.ReactionID() != rig.StateCollect {
		t.Errorf("reaction = %v (reacting=%v), want collect", animator.ReactionID(), animator.IsReacting())
	}

	// A second pass must not double-count.
	UpdateCollisions(e)
	if playerData.Keepsakes != 1 {
		t.Errorf("Keepsakes after second pass = %d, want 1", playerData.Keepsakes)
	}
}

func TestDeadZoneRespawnsAtLastSafeGround(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 400, "dazie")
	factory.CreateDeadZone(e, 90, 390, 60, 60)

	playerData := components.Player.Get(player)
	playerData.LastSafeX = 32
	playerData.LastSafeY = 48
	physics := components.Physics.Get(player)
	physics.SpeedX = 3
	physics.SpeedY = 5

	UpdateCollisions(e)

	obj := components.Object.Get(player)
	if obj.X != 32 || obj.Y != 48 {
		t.Errorf("position = (%v, %v), want (32, 48)", obj.X, obj.Y)
	}
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Errorf("speeds = (%v, %v), want zeroed", physics.SpeedX, physics.SpeedY)
	}
	animator := components.Rig.Get(player).Animator
	if animator.ReactionID() != rig.StateDamage {
		t.Errorf("reaction = %v, want damage", animator.ReactionID())
	}
}

func TestStoryTriggerAdvancesBeatOnce(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateStory(e)
	player := factory.CreatePlayer(e, 100, 400, "dazie")
	factory.CreateStoryTrigger(e, 90, 390, 60, 60, 1)

	UpdateCollisions(e)

	storyEntry, _ := components.Story.First(e.World)
	story := components.Story.Get(storyEntry)
	if story.BeatIndex != 1 {
		t.Fatalf("BeatIndex = %d, want 1", story.BeatIndex)
	}
	if story.Caption != cfg.Story.Beats[1].Caption {
		t.Errorf("Caption = %q, want beat 1 caption", story.Caption)
	}
	animator := components.Rig.Get(player).Animator
	if animator.Tone() != rig.ToneGentle {
		t.Errorf("tone = %v, want gentle", animator.Tone())
	}

	// Walking through again must not refire.
	story.CaptionTimer = 0
	UpdateCollisions(e)
	if story.BeatIndex != 1 || story.CaptionTimer != 0 {
		t.Errorf("beat refired: index=%d timer=%d", story.BeatIndex, story.CaptionTimer)
	}
}

func TestAdvanceStoryIgnoresBackwardAndOutOfRange(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateStory(e)

	AdvanceStory(e, 2)
	AdvanceStory(e, 1) // backward
	AdvanceStory(e, len(cfg.Story.Beats)) // out of range

	storyEntry, _ := components.Story.First(e.World)
	if got := components.Story.Get(storyEntry).BeatIndex; got != 2 {
		t.Errorf("BeatIndex = %d, want 2", got)
	}
}

func TestToneLockPinsEveryRig(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateStory(e)
	factory.CreateSettings(e)
	player := factory.CreatePlayer(e, 100, 400, "dazie")

	settingsEntry, _ := components.Settings.First(e.World)
	settings := components.Settings.Get(settingsEntry)
	settings.ToneLocked = true
	settings.LockedTone = rig.ToneMelancholic

	AdvanceStory(e, 1) // beat 1 wants gentle

	animator := components.Rig.Get(player).Animator
	if animator.Tone() != rig.ToneMelancholic {
		t.Errorf("tone = %v, want locked melancholic", animator.Tone())
	}
}

func TestStoryBeatSetsAntagonistDrift(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateStory(e)
	antagonist := factory.CreateAntagonist(e, 200, 400, 40, "echo_form", "echo_form")

	AdvanceStory(e, 2) // first_echo, drift 0.6

	animator := components.Rig.Get(antagonist).Animator
	if animator.DriftIntensity() != cfg.Story.Beats[2].Drift {
		t.Errorf("drift = %v, want %v", animator.DriftIntensity(), cfg.Story.Beats[2].Drift)
	}
}

func TestAntagonistContactKnocksBack(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateStory(e)
	player := factory.CreatePlayer(e, 100, 400, "dazie")
	factory.CreateAntagonist(e, 105, 400, 0, "echo_form", "echo_form")

	physics := components.Physics.Get(player)
	animator := components.Rig.Get(player).Animator

	// Becalmed manifestations are harmless.
	UpdateCollisions(e)
	if animator.IsReacting() {
		t.Fatal("contact with a becalmed antagonist should not hurt")
	}

	AdvanceStory(e, 2) // first_echo raises drift past the harm threshold

	UpdateCollisions(e)
	if animator.ReactionID() != rig.StateDamage {
		t.Fatalf("reaction = %v, want damage", animator.ReactionID())
	}
	if physics.SpeedX != -cfg.NPC.DamageKnockback {
		t.Errorf("SpeedX = %v, want knockback away from the antagonist", physics.SpeedX)
	}
	if physics.SpeedY != -cfg.NPC.DamageKnockback {
		t.Errorf("SpeedY = %v, want upward pop", physics.SpeedY)
	}
}

func TestCoyoteJumpStartsReaction(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 400, "dazie")

	input := getOrCreateInput(e)
	physics := components.Physics.Get(player)
	playerData := components.Player.Get(player)
	playerData.CoyoteFrames = 3 // just stepped off a ledge
	input.Current[cfg.ActionJump] = true

	UpdatePlayer(e)

	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Errorf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
	}
	animator := components.Rig.Get(player).Animator
	if animator.ReactionID() != rig.StateJump {
		t.Errorf("reaction = %v, want jump", animator.ReactionID())
	}
	if playerData.CoyoteFrames != 0 {
		t.Errorf("CoyoteFrames = %d, want consumed", playerData.CoyoteFrames)
	}
}

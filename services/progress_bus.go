package services

// The progress bus mirrors newly-derived state (unlocks, streak changes) to
// connected clients. Controllers call the Emit helpers after the engine runs;
// everything here is best-effort and never fails the request.

var _progress struct {
	rt *RealtimeHub
}

func InitProgressDeps(rt *RealtimeHub) {
	_progress.rt = rt
}

func EmitAchievementsUnlocked(userID uint, defs []AchievementDefinition) {
	if _progress.rt == nil || len(defs) == 0 {
		return
	}
	_progress.rt.Broadcast(userID, map[string]any{
		"kind":         "achievement.unlocked",
		"achievements": defs,
	})
}

func EmitStreakUpdated(userID uint, streak int) {
	if _progress.rt == nil {
		return
	}
	_progress.rt.Broadcast(userID, map[string]any{
		"kind":   "streak.updated",
		"streak": streak,
	})
}

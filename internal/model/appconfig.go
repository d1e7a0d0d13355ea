package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default plan settings applied to new projects
	DefaultGridWidth  int        `json:"default_grid_width"`
	DefaultGridHeight int        `json:"default_grid_height"`
	DefaultTileSize   int        `json:"default_tile_size"` // pixels
	DefaultCheckMode  CheckMode  `json:"default_check_mode"`
	DefaultSweepOrder SweepOrder `json:"default_sweep_order"`

	// Application preferences
	ShowLasers     bool     `json:"show_lasers"` // draw laser link tiles, not just beams
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultPlanSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultPlanSettings()
	return AppConfig{
		DefaultGridWidth:  defaults.Grid.Width,
		DefaultGridHeight: defaults.Grid.Height,
		DefaultTileSize:   defaults.Grid.TileSize,
		DefaultCheckMode:  defaults.CheckMode,
		DefaultSweepOrder: defaults.SweepOrder,
		ShowLasers:        false,
		RecentProjects:    []string{},
		Theme:             "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a PlanSettings.
// Zero or unknown values are skipped so a partially written config file
// cannot produce an unusable plan.
func (c AppConfig) ApplyToSettings(s *PlanSettings) {
	if c.DefaultGridWidth > 0 {
		s.Grid.Width = c.DefaultGridWidth
	}
	if c.DefaultGridHeight > 0 {
		s.Grid.Height = c.DefaultGridHeight
	}
	if c.DefaultTileSize > 0 {
		s.Grid.TileSize = c.DefaultTileSize
	}
	if c.DefaultCheckMode.Validate() == nil {
		s.CheckMode = c.DefaultCheckMode
	}
	if c.DefaultSweepOrder.Validate() == nil {
		s.SweepOrder = c.DefaultSweepOrder
	}
}

// PlanSettings returns the configured defaults as they are, without the
// fallbacks ApplyToSettings uses.
func (c AppConfig) PlanSettings() PlanSettings {
	return PlanSettings{
		Grid: GridConfig{
			Width:    c.DefaultGridWidth,
			Height:   c.DefaultGridHeight,
			TileSize: c.DefaultTileSize,
		},
		CheckMode:  c.DefaultCheckMode,
		SweepOrder: c.DefaultSweepOrder,
	}
}

// ResetPlanDefaults restores the plan defaults and leaves preferences alone.
func (c *AppConfig) ResetPlanDefaults() {
	d := DefaultAppConfig()
	c.DefaultGridWidth = d.DefaultGridWidth
	c.DefaultGridHeight = d.DefaultGridHeight
	c.DefaultTileSize = d.DefaultTileSize
	c.DefaultCheckMode = d.DefaultCheckMode
	c.DefaultSweepOrder = d.DefaultSweepOrder
}

const maxRecentProjects = 10

// AddRecentProject moves path to the front of the recent list.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}

package config

// LevelConfig is the content of one level (levels/<id>.yaml)
type LevelConfig struct {
	ID         string           `yaml:"id"`
	EndX       float64          `yaml:"endX"`
	Enemies    []string         `yaml:"enemies"`
	Clouds     int              `yaml:"clouds"`
	Coins      int              `yaml:"coins"`
	Bottles    int              `yaml:"bottles"`
	Background BackgroundConfig `yaml:"background"`
}

// BackgroundConfig tiles layer sets horizontally.
// Column i is drawn at i*Stride with Sets[|i| mod len(Sets)].
type BackgroundConfig struct {
	Stride  float64    `yaml:"stride"`
	Columns []int      `yaml:"columns"`
	Sets    [][]string `yaml:"sets"`
}

// LayerSet returns the layer images of a column
func (b BackgroundConfig) LayerSet(column int) []string {
	if len(b.Sets) == 0 {
		return nil
	}
	if column < 0 {
		column = -column
	}
	return b.Sets[column%len(b.Sets)]
}

package catalogs

// WaterType selects the water surface rendering.
type WaterType int

const (
	WaterNull WaterType = iota
	WaterTT             // transparent texture, transparent color
	WaterTO             // transparent texture, opaque color
	WaterCT             // opaque texture, transparent color
	WaterCO             // opaque texture, opaque color
)

var waterEntries = []Entry[WaterType]{
	{Name: "NULL", Code: WaterNull},
	{Name: "TT", Code: WaterTT},
	{Name: "TO", Code: WaterTO},
	{Name: "CT", Code: WaterCT},
	{Name: "CO", Code: WaterCO},
}

// TerrainType is the engine object class used for terrain pieces.
type TerrainType int

const (
	TerrainNull TerrainType = iota
	TerrainGround
	TerrainFix
	TerrainVehicle
	TerrainDescendant
	TerrainQuartz
	TerrainMetal
)

var terrainEntries = []Entry[TerrainType]{
	{Name: "Terrain", Code: TerrainGround},
	{Name: "Object", Code: TerrainFix},
	{Name: "Quartz", Code: TerrainQuartz},
	{Name: "Metal", Code: TerrainMetal},
}

// BuildFlag is a bit in the set of buildings a level allows.
type BuildFlag int

const (
	BuildFactory    BuildFlag = 1 << 0
	BuildDerrick    BuildFlag = 1 << 1
	BuildConvert    BuildFlag = 1 << 2
	BuildRadar      BuildFlag = 1 << 3
	BuildEnergy     BuildFlag = 1 << 4
	BuildNuclear    BuildFlag = 1 << 5
	BuildStation    BuildFlag = 1 << 6
	BuildRepair     BuildFlag = 1 << 7
	BuildTower      BuildFlag = 1 << 8
	BuildResearch   BuildFlag = 1 << 9
	BuildLabo       BuildFlag = 1 << 10
	BuildPara       BuildFlag = 1 << 11
	BuildInfo       BuildFlag = 1 << 12
	BuildDestroyer  BuildFlag = 1 << 13
	BuildGFlat      BuildFlag = 1 << 16 // flat ground
	BuildFlagMarker BuildFlag = 1 << 17 // colored flags
)

var buildEntries = []Entry[BuildFlag]{
	{Name: "BotFactory", Code: BuildFactory},
	{Name: "Derrick", Code: BuildDerrick},
	{Name: "Converter", Code: BuildConvert},
	{Name: "RadarStation", Code: BuildRadar},
	{Name: "PowerPlant", Code: BuildEnergy},
	{Name: "NuclearPlant", Code: BuildNuclear},
	{Name: "FuelCellPlant", Code: BuildNuclear, Alias: true},
	{Name: "PowerStation", Code: BuildStation},
	{Name: "RepairCenter", Code: BuildRepair},
	{Name: "DefenseTower", Code: BuildTower},
	{Name: "ResearchCenter", Code: BuildResearch},
	{Name: "AutoLab", Code: BuildLabo},
	{Name: "PowerCaptor", Code: BuildPara},
	{Name: "ExchangePost", Code: BuildInfo},
	{Name: "Destroyer", Code: BuildDestroyer},
	{Name: "FlatGround", Code: BuildGFlat},
	{Name: "Flag", Code: BuildFlagMarker},
}

// ResearchFlag is a bit in the set of researches.
type ResearchFlag int

const (
	ResearchTank     ResearchFlag = 1 << 0
	ResearchFly      ResearchFlag = 1 << 1
	ResearchThump    ResearchFlag = 1 << 2
	ResearchCanon    ResearchFlag = 1 << 3
	ResearchTower    ResearchFlag = 1 << 4
	ResearchPhazer   ResearchFlag = 1 << 5
	ResearchShield   ResearchFlag = 1 << 6
	ResearchAtomic   ResearchFlag = 1 << 7
	ResearchIPaw     ResearchFlag = 1 << 8
	ResearchIGun     ResearchFlag = 1 << 9
	ResearchRecycler ResearchFlag = 1 << 10
	ResearchSubm     ResearchFlag = 1 << 11
	ResearchSniffer  ResearchFlag = 1 << 12
)

var researchEntries = []Entry[ResearchFlag]{
	{Name: "TRACKER", Code: ResearchTank},
	{Name: "WINGER", Code: ResearchFly},
	{Name: "THUMPER", Code: ResearchThump},
	{Name: "SHOOTER", Code: ResearchCanon},
	{Name: "TOWER", Code: ResearchTower},
	{Name: "PHAZER", Code: ResearchPhazer},
	{Name: "SHIELDER", Code: ResearchShield},
	{Name: "ATOMIC", Code: ResearchAtomic},
	{Name: "iPAW", Code: ResearchIPaw},
	{Name: "iGUN", Code: ResearchIGun},
	{Name: "RECYCLER", Code: ResearchRecycler},
	{Name: "SUBBER", Code: ResearchSubm},
	{Name: "SNIFFER", Code: ResearchSniffer},
}

// PyroType is a pyrotechnic effect.
type PyroType int

const (
	PyroNull PyroType = iota
	PyroFragT
	PyroFragO
	PyroFragW
	PyroExploT
	PyroExploO
	PyroExploW
	PyroShotT
	PyroShotH
	PyroShotM
	PyroShotW
	PyroEgg
	PyroBurnT
	PyroBurnO
	PyroSpider
	PyroFall
	PyroReset
	PyroWin
	PyroLost
)

var pyroEntries = []Entry[PyroType]{
	{Name: "FRAGt", Code: PyroFragT},
	{Name: "FRAGo", Code: PyroFragO},
	{Name: "FRAGw", Code: PyroFragW},
	{Name: "EXPLOt", Code: PyroExploT},
	{Name: "EXPLOo", Code: PyroExploO},
	{Name: "EXPLOw", Code: PyroExploW},
	{Name: "SHOTt", Code: PyroShotT},
	{Name: "SHOTh", Code: PyroShotH},
	{Name: "SHOTm", Code: PyroShotM},
	{Name: "SHOTw", Code: PyroShotW},
	{Name: "EGG", Code: PyroEgg},
	{Name: "BURNt", Code: PyroBurnT},
	{Name: "BURNo", Code: PyroBurnO},
	{Name: "SPIDER", Code: PyroSpider},
	{Name: "FALL", Code: PyroFall},
	{Name: "RESET", Code: PyroReset},
	{Name: "WIN", Code: PyroWin},
	{Name: "LOST", Code: PyroLost},
}

// CameraType is the camera mode attached to an object or a scene.
type CameraType int

const (
	CameraNull CameraType = iota
	CameraFree
	CameraEdit
	CameraOnboard
	CameraBack
	CameraFix
	CameraExplo
	CameraScript
	CameraInfo
	CameraVisit
	CameraDialog
	CameraPlane
)

var cameraEntries = []Entry[CameraType]{
	{Name: "BACK", Code: CameraBack},
	{Name: "PLANE", Code: CameraPlane},
	{Name: "ONBOARD", Code: CameraOnboard},
	{Name: "FIX", Code: CameraFix},
}

// DriveType is the locomotion of a robot.
type DriveType int

const (
	DriveOther DriveType = iota
	DriveWheeled
	DriveTracked
	DriveWinged
	DriveLegged
)

var driveEntries = []Entry[DriveType]{
	{Name: "Wheeled", Code: DriveWheeled},
	{Name: "Tracked", Code: DriveTracked},
	{Name: "Winged", Code: DriveWinged},
	{Name: "Legged", Code: DriveLegged},
}

// ToolType is the tool mounted on a robot.
type ToolType int

const (
	ToolOther ToolType = iota
	ToolGrabber
	ToolSniffer
	ToolShooter
	ToolOrgaShooter
)

var toolEntries = []Entry[ToolType]{
	{Name: "Grabber", Code: ToolGrabber},
	{Name: "Sniffer", Code: ToolSniffer},
	{Name: "Shooter", Code: ToolShooter},
	{Name: "OrgaShooter", Code: ToolOrgaShooter},
}

package catalogs

// ObjectType identifies the kind of a game object.
type ObjectType int

const (
	ObjectNull ObjectType = iota
	ObjectPortico
	ObjectBase
	ObjectMobileWT
	ObjectMobileFA
	ObjectMobileTA
	ObjectMobileWA
	ObjectMobileIA
	ObjectMobileFC
	ObjectMobileTC
	ObjectMobileWC
	ObjectMobileIC
	ObjectMobileFI
	ObjectMobileTI
	ObjectMobileWI
	ObjectMobileII
	ObjectMobileFS
	ObjectMobileTS
	ObjectMobileWS
	ObjectMobileIS
	ObjectMobileRT
	ObjectMobileRC
	ObjectMobileRR
	ObjectMobileRS
	ObjectMobileSA
	ObjectMobileTG
	ObjectMobileDR
	ObjectMarkPower
	ObjectMarkStone
	ObjectMarkUranium
	ObjectMarkKeyA
	ObjectMarkKeyB
	ObjectMarkKeyC
	ObjectMarkKeyD
	ObjectWayPoint
	ObjectFlagB
	ObjectFlagR
	ObjectFlagG
	ObjectFlagY
	ObjectFlagV
	ObjectPower
	ObjectAtomic
	ObjectStone
	ObjectUranium
	ObjectMetal
	ObjectBullet
	ObjectBBox
	ObjectKeyA
	ObjectKeyB
	ObjectKeyC
	ObjectKeyD
	ObjectTNT
	ObjectScrap1
	ObjectScrap2
	ObjectScrap3
	ObjectScrap4
	ObjectScrap5
	ObjectBomb
	ObjectWinFire
	ObjectBag
	ObjectPlant0
	ObjectPlant1
	ObjectPlant2
	ObjectPlant3
	ObjectPlant4
	ObjectPlant5
	ObjectPlant6
	ObjectPlant7
	ObjectPlant8
	ObjectPlant9
	ObjectPlant10
	ObjectPlant11
	ObjectPlant12
	ObjectPlant13
	ObjectPlant14
	ObjectPlant15
	ObjectPlant16
	ObjectPlant17
	ObjectPlant18
	ObjectPlant19
	ObjectTree0
	ObjectTree1
	ObjectTree2
	ObjectTree3
	ObjectTree4
	ObjectTree5
	ObjectMushroom1
	ObjectMushroom2
	ObjectHome1
	ObjectDerrick
	ObjectFactory
	ObjectStation
	ObjectConvert
	ObjectRepair
	ObjectDestroyer
	ObjectTower
	ObjectNest
	ObjectResearch
	ObjectRadar
	ObjectInfo
	ObjectEnergy
	ObjectLabo
	ObjectNuclear
	ObjectPara
	ObjectSafe
	ObjectHuston
	ObjectTarget1
	ObjectTarget2
	ObjectStart
	ObjectEnd
	ObjectMother
	ObjectEgg
	ObjectAnt
	ObjectSpider
	ObjectBee
	ObjectWorm
	ObjectRuinMobileW1
	ObjectRuinMobileW2
	ObjectRuinMobileT1
	ObjectRuinMobileT2
	ObjectRuinMobileR1
	ObjectRuinMobileR2
	ObjectRuinFactory
	ObjectRuinDoor
	ObjectRuinSupport
	ObjectRuinRadar
	ObjectRuinConvert
	ObjectRuinBase
	ObjectRuinHead
	ObjectBarrier0
	ObjectBarrier1
	ObjectBarrier2
	ObjectBarrier3
	ObjectTeen0
	ObjectTeen1
	ObjectTeen2
	ObjectTeen3
	ObjectTeen4
	ObjectTeen5
	ObjectTeen6
	ObjectTeen7
	ObjectTeen8
	ObjectTeen9
	ObjectTeen10
	ObjectTeen11
	ObjectTeen12
	ObjectTeen13
	ObjectTeen14
	ObjectTeen15
	ObjectTeen16
	ObjectTeen17
	ObjectTeen18
	ObjectTeen19
	ObjectTeen20
	ObjectTeen21
	ObjectTeen22
	ObjectTeen23
	ObjectTeen24
	ObjectTeen25
	ObjectTeen26
	ObjectTeen27
	ObjectTeen28
	ObjectTeen29
	ObjectTeen30
	ObjectTeen31
	ObjectTeen32
	ObjectTeen33
	ObjectTeen34
	ObjectTeen35
	ObjectTeen36
	ObjectTeen37
	ObjectTeen38
	ObjectTeen39
	ObjectTeen40
	ObjectTeen41
	ObjectTeen42
	ObjectTeen43
	ObjectTeen44
	ObjectQuartz0
	ObjectQuartz1
	ObjectQuartz2
	ObjectQuartz3
	ObjectRoot0
	ObjectRoot1
	ObjectRoot2
	ObjectRoot3
	ObjectRoot4
	ObjectRoot5
	ObjectApollo1
	ObjectApollo2
	ObjectApollo3
	ObjectApollo4
	ObjectApollo5
	ObjectHuman
	ObjectTech
	ObjectController
)

// objectEntries is scanned in order when decoding. Entries flagged Alias
// decode but are never produced by Name.
var objectEntries = []Entry[ObjectType]{
	{Name: "All", Code: ObjectNull, Alias: true}, // matches every type in filters
	{Name: "Portico", Code: ObjectPortico},
	{Name: "SpaceShip", Code: ObjectBase},
	{Name: "PracticeBot", Code: ObjectMobileWT},
	{Name: "WingedGrabber", Code: ObjectMobileFA},
	{Name: "TrackedGrabber", Code: ObjectMobileTA},
	{Name: "WheeledGrabber", Code: ObjectMobileWA},
	{Name: "LeggedGrabber", Code: ObjectMobileIA},
	{Name: "WingedShooter", Code: ObjectMobileFC},
	{Name: "TrackedShooter", Code: ObjectMobileTC},
	{Name: "WheeledShooter", Code: ObjectMobileWC},
	{Name: "LeggedShooter", Code: ObjectMobileIC},
	{Name: "WingedOrgaShooter", Code: ObjectMobileFI},
	{Name: "TrackedOrgaShooter", Code: ObjectMobileTI},
	{Name: "WheeledOrgaShooter", Code: ObjectMobileWI},
	{Name: "LeggedOrgaShooter", Code: ObjectMobileII},
	{Name: "WingedSniffer", Code: ObjectMobileFS},
	{Name: "TrackedSniffer", Code: ObjectMobileTS},
	{Name: "WheeledSniffer", Code: ObjectMobileWS},
	{Name: "LeggedSniffer", Code: ObjectMobileIS},
	{Name: "Thumper", Code: ObjectMobileRT},
	{Name: "PhazerShooter", Code: ObjectMobileRC},
	{Name: "Recycler", Code: ObjectMobileRR},
	{Name: "Shielder", Code: ObjectMobileRS},
	{Name: "Subber", Code: ObjectMobileSA},
	{Name: "TargetBot", Code: ObjectMobileTG},
	{Name: "Scribbler", Code: ObjectMobileDR},
	{Name: "PowerSpot", Code: ObjectMarkPower},
	{Name: "TitaniumSpot", Code: ObjectMarkStone},
	{Name: "UraniumSpot", Code: ObjectMarkUranium},
	{Name: "PlatinumSpot", Code: ObjectMarkUranium, Alias: true}, // renamed ore, old levels still use it
	{Name: "KeyASpot", Code: ObjectMarkKeyA},
	{Name: "KeyBSpot", Code: ObjectMarkKeyB},
	{Name: "KeyCSpot", Code: ObjectMarkKeyC},
	{Name: "KeyDSpot", Code: ObjectMarkKeyD},
	{Name: "WayPoint", Code: ObjectWayPoint},
	{Name: "BlueFlag", Code: ObjectFlagB},
	{Name: "RedFlag", Code: ObjectFlagR},
	{Name: "GreenFlag", Code: ObjectFlagG},
	{Name: "YellowFlag", Code: ObjectFlagY},
	{Name: "VioletFlag", Code: ObjectFlagV},
	{Name: "PowerCell", Code: ObjectPower},
	{Name: "FuelCellPlant", Code: ObjectNuclear, Alias: true},
	{Name: "FuelCell", Code: ObjectAtomic, Alias: true},
	{Name: "NuclearCell", Code: ObjectAtomic},
	{Name: "TitaniumOre", Code: ObjectStone},
	{Name: "UraniumOre", Code: ObjectUranium},
	{Name: "PlatinumOre", Code: ObjectUranium, Alias: true}, // same ore, two names
	{Name: "Titanium", Code: ObjectMetal},
	{Name: "OrgaMatter", Code: ObjectBullet},
	{Name: "BlackBox", Code: ObjectBBox},
	{Name: "KeyA", Code: ObjectKeyA},
	{Name: "KeyB", Code: ObjectKeyB},
	{Name: "KeyC", Code: ObjectKeyC},
	{Name: "KeyD", Code: ObjectKeyD},
	{Name: "TNT", Code: ObjectTNT},
	{Name: "Scrap1", Code: ObjectScrap1},
	{Name: "Scrap2", Code: ObjectScrap2},
	{Name: "Scrap3", Code: ObjectScrap3},
	{Name: "Scrap4", Code: ObjectScrap4},
	{Name: "Scrap5", Code: ObjectScrap5},
	{Name: "Mine", Code: ObjectBomb},
	{Name: "Firework", Code: ObjectWinFire},
	{Name: "Bag", Code: ObjectBag},
	{Name: "Greenery0", Code: ObjectPlant0},
	{Name: "Greenery1", Code: ObjectPlant1},
	{Name: "Greenery2", Code: ObjectPlant2},
	{Name: "Greenery3", Code: ObjectPlant3},
	{Name: "Greenery4", Code: ObjectPlant4},
	{Name: "Greenery5", Code: ObjectPlant5},
	{Name: "Greenery6", Code: ObjectPlant6},
	{Name: "Greenery7", Code: ObjectPlant7},
	{Name: "Greenery8", Code: ObjectPlant8},
	{Name: "Greenery9", Code: ObjectPlant9},
	{Name: "Greenery10", Code: ObjectPlant10},
	{Name: "Greenery11", Code: ObjectPlant11},
	{Name: "Greenery12", Code: ObjectPlant12},
	{Name: "Greenery13", Code: ObjectPlant13},
	{Name: "Greenery14", Code: ObjectPlant14},
	{Name: "Greenery15", Code: ObjectPlant15},
	{Name: "Greenery16", Code: ObjectPlant16},
	{Name: "Greenery17", Code: ObjectPlant17},
	{Name: "Greenery18", Code: ObjectPlant18},
	{Name: "Greenery19", Code: ObjectPlant19},
	{Name: "Tree0", Code: ObjectTree0},
	{Name: "Tree1", Code: ObjectTree1},
	{Name: "Tree2", Code: ObjectTree2},
	{Name: "Tree3", Code: ObjectTree3},
	{Name: "Tree4", Code: ObjectTree4},
	{Name: "Tree5", Code: ObjectTree5},
	{Name: "Mushroom1", Code: ObjectMushroom1},
	{Name: "Mushroom2", Code: ObjectMushroom2},
	{Name: "Home", Code: ObjectHome1},
	{Name: "Derrick", Code: ObjectDerrick},
	{Name: "BotFactory", Code: ObjectFactory},
	{Name: "PowerStation", Code: ObjectStation},
	{Name: "Converter", Code: ObjectConvert},
	{Name: "RepairCenter", Code: ObjectRepair},
	{Name: "Destroyer", Code: ObjectDestroyer},
	{Name: "DefenseTower", Code: ObjectTower},
	{Name: "AlienNest", Code: ObjectNest},
	{Name: "ResearchCenter", Code: ObjectResearch},
	{Name: "RadarStation", Code: ObjectRadar},
	{Name: "ExchangePost", Code: ObjectInfo},
	{Name: "PowerPlant", Code: ObjectEnergy},
	{Name: "AutoLab", Code: ObjectLabo},
	{Name: "NuclearPlant", Code: ObjectNuclear},
	{Name: "PowerCaptor", Code: ObjectPara},
	{Name: "Vault", Code: ObjectSafe},
	{Name: "Houston", Code: ObjectHuston},
	{Name: "Target1", Code: ObjectTarget1},
	{Name: "Target2", Code: ObjectTarget2},
	{Name: "StartArea", Code: ObjectStart},
	{Name: "GoalArea", Code: ObjectEnd},
	{Name: "AlienQueen", Code: ObjectMother},
	{Name: "AlienEgg", Code: ObjectEgg},
	{Name: "AlienAnt", Code: ObjectAnt},
	{Name: "AlienSpider", Code: ObjectSpider},
	{Name: "AlienWasp", Code: ObjectBee},
	{Name: "AlienWorm", Code: ObjectWorm},
	{Name: "WreckBotw1", Code: ObjectRuinMobileW1},
	{Name: "WreckBotw2", Code: ObjectRuinMobileW2},
	{Name: "WreckBott1", Code: ObjectRuinMobileT1},
	{Name: "WreckBott2", Code: ObjectRuinMobileT2},
	{Name: "WreckBotr1", Code: ObjectRuinMobileR1},
	{Name: "WreckBotr2", Code: ObjectRuinMobileR2},
	{Name: "RuinBotFactory", Code: ObjectRuinFactory},
	{Name: "RuinDoor", Code: ObjectRuinDoor},
	{Name: "RuinSupport", Code: ObjectRuinSupport},
	{Name: "RuinRadar", Code: ObjectRuinRadar},
	{Name: "RuinConvert", Code: ObjectRuinConvert},
	{Name: "RuinBaseCamp", Code: ObjectRuinBase},
	{Name: "RuinHeadCamp", Code: ObjectRuinHead},
	{Name: "Barrier0", Code: ObjectBarrier0},
	{Name: "Barrier1", Code: ObjectBarrier1},
	{Name: "Barrier2", Code: ObjectBarrier2},
	{Name: "Barrier3", Code: ObjectBarrier3},
	{Name: "Teen0", Code: ObjectTeen0},
	{Name: "Teen1", Code: ObjectTeen1},
	{Name: "Teen2", Code: ObjectTeen2},
	{Name: "Teen3", Code: ObjectTeen3},
	{Name: "Teen4", Code: ObjectTeen4},
	{Name: "Teen5", Code: ObjectTeen5},
	{Name: "Teen6", Code: ObjectTeen6},
	{Name: "Teen7", Code: ObjectTeen7},
	{Name: "Teen8", Code: ObjectTeen8},
	{Name: "Teen9", Code: ObjectTeen9},
	{Name: "Teen10", Code: ObjectTeen10},
	{Name: "Teen11", Code: ObjectTeen11},
	{Name: "Teen12", Code: ObjectTeen12},
	{Name: "Teen13", Code: ObjectTeen13},
	{Name: "Teen14", Code: ObjectTeen14},
	{Name: "Teen15", Code: ObjectTeen15},
	{Name: "Teen16", Code: ObjectTeen16},
	{Name: "Teen17", Code: ObjectTeen17},
	{Name: "Teen18", Code: ObjectTeen18},
	{Name: "Teen19", Code: ObjectTeen19},
	{Name: "Teen20", Code: ObjectTeen20},
	{Name: "Teen21", Code: ObjectTeen21},
	{Name: "Teen22", Code: ObjectTeen22},
	{Name: "Teen23", Code: ObjectTeen23},
	{Name: "Teen24", Code: ObjectTeen24},
	{Name: "Teen25", Code: ObjectTeen25},
	{Name: "Teen26", Code: ObjectTeen26},
	{Name: "Teen27", Code: ObjectTeen27},
	{Name: "Teen28", Code: ObjectTeen28},
	{Name: "Teen29", Code: ObjectTeen29},
	{Name: "Teen30", Code: ObjectTeen30},
	{Name: "Teen31", Code: ObjectTeen31},
	{Name: "Teen32", Code: ObjectTeen32},
	{Name: "Teen33", Code: ObjectTeen33},
	{Name: "Stone", Code: ObjectTeen34},
	{Name: "Teen35", Code: ObjectTeen35},
	{Name: "Teen36", Code: ObjectTeen36},
	{Name: "Teen37", Code: ObjectTeen37},
	{Name: "Teen38", Code: ObjectTeen38},
	{Name: "Teen39", Code: ObjectTeen39},
	{Name: "Teen40", Code: ObjectTeen40},
	{Name: "Teen41", Code: ObjectTeen41},
	{Name: "Teen42", Code: ObjectTeen42},
	{Name: "Teen43", Code: ObjectTeen43},
	{Name: "Teen44", Code: ObjectTeen44},
	{Name: "Quartz0", Code: ObjectQuartz0},
	{Name: "Quartz1", Code: ObjectQuartz1},
	{Name: "Quartz2", Code: ObjectQuartz2},
	{Name: "Quartz3", Code: ObjectQuartz3},
	{Name: "MegaStalk0", Code: ObjectRoot0},
	{Name: "MegaStalk1", Code: ObjectRoot1},
	{Name: "MegaStalk2", Code: ObjectRoot2},
	{Name: "MegaStalk3", Code: ObjectRoot3},
	{Name: "MegaStalk4", Code: ObjectRoot4},
	{Name: "MegaStalk5", Code: ObjectRoot5},
	{Name: "ApolloLEM", Code: ObjectApollo1},
	{Name: "ApolloJeep", Code: ObjectApollo2},
	{Name: "ApolloFlag", Code: ObjectApollo3},
	{Name: "ApolloModule", Code: ObjectApollo4},
	{Name: "ApolloAntenna", Code: ObjectApollo5},
	{Name: "Me", Code: ObjectHuman},
	{Name: "Tech", Code: ObjectTech},
	{Name: "MissionController", Code: ObjectController},
}

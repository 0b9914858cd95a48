package constants

// Module ids used as keys in the user permission map and by the route guards.
const (
	ModuleLGUs            = "lgus"
	ModuleBuildings       = "buildings"
	ModuleVehicles        = "vehicles"
	ModuleEquipment       = "equipment"
	ModuleElectricity     = "electricity_reports"
	ModuleFuel            = "fuel_reports"
	ModuleFindings        = "seu_findings"
	ModuleRecommendations = "recommendations"
	ModuleProjects        = "projects"
	ModuleReports         = "reports"
	ModuleDashboard       = "dashboard"
)

// AllModules lists every gated module id.
var AllModules = []string{
	ModuleLGUs,
	ModuleBuildings,
	ModuleVehicles,
	ModuleEquipment,
	ModuleElectricity,
	ModuleFuel,
	ModuleFindings,
	ModuleRecommendations,
	ModuleProjects,
	ModuleReports,
	ModuleDashboard,
}

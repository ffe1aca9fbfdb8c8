/*
Copyright 2019 Alexander Eldeib.
*/

package compute

import (
	"github.com/alexeldeib/azmodels/pkg/openenum"
)

// Architecture - The architecture of the image. Applicable to OS disks only.
type Architecture string

const (
	ArchitectureArm64 Architecture = "Arm64"
	ArchitectureX64   Architecture = "x64"
)

var architectureValues = openenum.New("Architecture", []Architecture{
	ArchitectureArm64,
	ArchitectureX64,
})

// PossibleArchitectureValues returns the possible values for the Architecture const type.
func PossibleArchitectureValues() []Architecture {
	return architectureValues.Values()
}

func (v Architecture) MarshalJSON() ([]byte, error) {
	return architectureValues.Marshal(v)
}

func (v *Architecture) UnmarshalJSON(b []byte) error {
	return architectureValues.Unmarshal(b, v)
}

// CachingTypes - Specifies the caching requirements.
type CachingTypes string

const (
	CachingTypesNone      CachingTypes = "None"
	CachingTypesReadOnly  CachingTypes = "ReadOnly"
	CachingTypesReadWrite CachingTypes = "ReadWrite"
)

var cachingTypesValues = openenum.New("CachingTypes", []CachingTypes{
	CachingTypesNone,
	CachingTypesReadOnly,
	CachingTypesReadWrite,
}, openenum.Closed())

// PossibleCachingTypesValues returns the possible values for the CachingTypes const type.
func PossibleCachingTypesValues() []CachingTypes {
	return cachingTypesValues.Values()
}

func (v CachingTypes) MarshalJSON() ([]byte, error) {
	return cachingTypesValues.Marshal(v)
}

func (v *CachingTypes) UnmarshalJSON(b []byte) error {
	return cachingTypesValues.Unmarshal(b, v)
}

// ComponentNames - The component name. Currently, the only allowable value is Microsoft-Windows-Shell-Setup.
type ComponentNames string

const (
	ComponentNamesMicrosoftWindowsShellSetup ComponentNames = "Microsoft-Windows-Shell-Setup"
)

var componentNamesValues = openenum.New("ComponentNames", []ComponentNames{
	ComponentNamesMicrosoftWindowsShellSetup,
}, openenum.Closed())

// PossibleComponentNamesValues returns the possible values for the ComponentNames const type.
func PossibleComponentNamesValues() []ComponentNames {
	return componentNamesValues.Values()
}

func (v ComponentNames) MarshalJSON() ([]byte, error) {
	return componentNamesValues.Marshal(v)
}

func (v *ComponentNames) UnmarshalJSON(b []byte) error {
	return componentNamesValues.Unmarshal(b, v)
}

// DeleteOptions - Specify what happens to the network interface when the VM is deleted.
type DeleteOptions string

const (
	DeleteOptionsDelete DeleteOptions = "Delete"
	DeleteOptionsDetach DeleteOptions = "Detach"
)

var deleteOptionsValues = openenum.New("DeleteOptions", []DeleteOptions{
	DeleteOptionsDelete,
	DeleteOptionsDetach,
})

// PossibleDeleteOptionsValues returns the possible values for the DeleteOptions const type.
func PossibleDeleteOptionsValues() []DeleteOptions {
	return deleteOptionsValues.Values()
}

func (v DeleteOptions) MarshalJSON() ([]byte, error) {
	return deleteOptionsValues.Marshal(v)
}

func (v *DeleteOptions) UnmarshalJSON(b []byte) error {
	return deleteOptionsValues.Unmarshal(b, v)
}

// DiskCreateOption - This enumerates the possible sources of a disk's creation.
type DiskCreateOption string

const (
	DiskCreateOptionAttach               DiskCreateOption = "Attach"
	DiskCreateOptionCopy                 DiskCreateOption = "Copy"
	DiskCreateOptionCopyFromSanSnapshot  DiskCreateOption = "CopyFromSanSnapshot"
	DiskCreateOptionCopyStart            DiskCreateOption = "CopyStart"
	DiskCreateOptionEmpty                DiskCreateOption = "Empty"
	DiskCreateOptionFromImage            DiskCreateOption = "FromImage"
	DiskCreateOptionImport               DiskCreateOption = "Import"
	DiskCreateOptionImportSecure         DiskCreateOption = "ImportSecure"
	DiskCreateOptionRestore              DiskCreateOption = "Restore"
	DiskCreateOptionUpload               DiskCreateOption = "Upload"
	DiskCreateOptionUploadPreparedSecure DiskCreateOption = "UploadPreparedSecure"
)

var diskCreateOptionValues = openenum.New("DiskCreateOption", []DiskCreateOption{
	DiskCreateOptionAttach,
	DiskCreateOptionCopy,
	DiskCreateOptionCopyFromSanSnapshot,
	DiskCreateOptionCopyStart,
	DiskCreateOptionEmpty,
	DiskCreateOptionFromImage,
	DiskCreateOptionImport,
	DiskCreateOptionImportSecure,
	DiskCreateOptionRestore,
	DiskCreateOptionUpload,
	DiskCreateOptionUploadPreparedSecure,
})

// PossibleDiskCreateOptionValues returns the possible values for the DiskCreateOption const type.
func PossibleDiskCreateOptionValues() []DiskCreateOption {
	return diskCreateOptionValues.Values()
}

func (v DiskCreateOption) MarshalJSON() ([]byte, error) {
	return diskCreateOptionValues.Marshal(v)
}

func (v *DiskCreateOption) UnmarshalJSON(b []byte) error {
	return diskCreateOptionValues.Unmarshal(b, v)
}

// DiskCreateOptionTypes - Specifies how the virtual machine disk should be created.
type DiskCreateOptionTypes string

const (
	DiskCreateOptionTypesAttach    DiskCreateOptionTypes = "Attach"
	DiskCreateOptionTypesCopy      DiskCreateOptionTypes = "Copy"
	DiskCreateOptionTypesEmpty     DiskCreateOptionTypes = "Empty"
	DiskCreateOptionTypesFromImage DiskCreateOptionTypes = "FromImage"
	DiskCreateOptionTypesRestore   DiskCreateOptionTypes = "Restore"
)

var diskCreateOptionTypesValues = openenum.New("DiskCreateOptionTypes", []DiskCreateOptionTypes{
	DiskCreateOptionTypesAttach,
	DiskCreateOptionTypesCopy,
	DiskCreateOptionTypesEmpty,
	DiskCreateOptionTypesFromImage,
	DiskCreateOptionTypesRestore,
})

// PossibleDiskCreateOptionTypesValues returns the possible values for the DiskCreateOptionTypes const type.
func PossibleDiskCreateOptionTypesValues() []DiskCreateOptionTypes {
	return diskCreateOptionTypesValues.Values()
}

func (v DiskCreateOptionTypes) MarshalJSON() ([]byte, error) {
	return diskCreateOptionTypesValues.Marshal(v)
}

func (v *DiskCreateOptionTypes) UnmarshalJSON(b []byte) error {
	return diskCreateOptionTypesValues.Unmarshal(b, v)
}

// DiskDeleteOptionTypes - Specifies the behavior of the managed disk when the VM gets deleted.
type DiskDeleteOptionTypes string

const (
	DiskDeleteOptionTypesDelete DiskDeleteOptionTypes = "Delete"
	DiskDeleteOptionTypesDetach DiskDeleteOptionTypes = "Detach"
)

var diskDeleteOptionTypesValues = openenum.New("DiskDeleteOptionTypes", []DiskDeleteOptionTypes{
	DiskDeleteOptionTypesDelete,
	DiskDeleteOptionTypesDetach,
})

// PossibleDiskDeleteOptionTypesValues returns the possible values for the DiskDeleteOptionTypes const type.
func PossibleDiskDeleteOptionTypesValues() []DiskDeleteOptionTypes {
	return diskDeleteOptionTypesValues.Values()
}

func (v DiskDeleteOptionTypes) MarshalJSON() ([]byte, error) {
	return diskDeleteOptionTypesValues.Marshal(v)
}

func (v *DiskDeleteOptionTypes) UnmarshalJSON(b []byte) error {
	return diskDeleteOptionTypesValues.Unmarshal(b, v)
}

// DiskState - This enumerates the possible state of the disk.
type DiskState string

const (
	DiskStateActiveSAS       DiskState = "ActiveSAS"
	DiskStateActiveSASFrozen DiskState = "ActiveSASFrozen"
	DiskStateActiveUpload    DiskState = "ActiveUpload"
	DiskStateAttached        DiskState = "Attached"
	DiskStateFrozen          DiskState = "Frozen"
	DiskStateReadyToUpload   DiskState = "ReadyToUpload"
	DiskStateReserved        DiskState = "Reserved"
	DiskStateUnattached      DiskState = "Unattached"
)

var diskStateValues = openenum.New("DiskState", []DiskState{
	DiskStateActiveSAS,
	DiskStateActiveSASFrozen,
	DiskStateActiveUpload,
	DiskStateAttached,
	DiskStateFrozen,
	DiskStateReadyToUpload,
	DiskStateReserved,
	DiskStateUnattached,
})

// PossibleDiskStateValues returns the possible values for the DiskState const type.
func PossibleDiskStateValues() []DiskState {
	return diskStateValues.Values()
}

func (v DiskState) MarshalJSON() ([]byte, error) {
	return diskStateValues.Marshal(v)
}

func (v *DiskState) UnmarshalJSON(b []byte) error {
	return diskStateValues.Unmarshal(b, v)
}

// DiskStorageAccountTypes - The sku name.
type DiskStorageAccountTypes string

const (
	DiskStorageAccountTypesPremiumLRS     DiskStorageAccountTypes = "Premium_LRS"
	DiskStorageAccountTypesPremiumV2LRS   DiskStorageAccountTypes = "PremiumV2_LRS"
	DiskStorageAccountTypesPremiumZRS     DiskStorageAccountTypes = "Premium_ZRS"
	DiskStorageAccountTypesStandardLRS    DiskStorageAccountTypes = "Standard_LRS"
	DiskStorageAccountTypesStandardSSDLRS DiskStorageAccountTypes = "StandardSSD_LRS"
	DiskStorageAccountTypesStandardSSDZRS DiskStorageAccountTypes = "StandardSSD_ZRS"
	DiskStorageAccountTypesUltraSSDLRS    DiskStorageAccountTypes = "UltraSSD_LRS"
)

var diskStorageAccountTypesValues = openenum.New("DiskStorageAccountTypes", []DiskStorageAccountTypes{
	DiskStorageAccountTypesPremiumLRS,
	DiskStorageAccountTypesPremiumV2LRS,
	DiskStorageAccountTypesPremiumZRS,
	DiskStorageAccountTypesStandardLRS,
	DiskStorageAccountTypesStandardSSDLRS,
	DiskStorageAccountTypesStandardSSDZRS,
	DiskStorageAccountTypesUltraSSDLRS,
})

// PossibleDiskStorageAccountTypesValues returns the possible values for the DiskStorageAccountTypes const type.
func PossibleDiskStorageAccountTypesValues() []DiskStorageAccountTypes {
	return diskStorageAccountTypesValues.Values()
}

func (v DiskStorageAccountTypes) MarshalJSON() ([]byte, error) {
	return diskStorageAccountTypesValues.Marshal(v)
}

func (v *DiskStorageAccountTypes) UnmarshalJSON(b []byte) error {
	return diskStorageAccountTypesValues.Unmarshal(b, v)
}

// ExtendedLocationTypes - The type of extendedLocation.
type ExtendedLocationTypes string

const (
	ExtendedLocationTypesEdgeZone ExtendedLocationTypes = "EdgeZone"
)

var extendedLocationTypesValues = openenum.New("ExtendedLocationTypes", []ExtendedLocationTypes{
	ExtendedLocationTypesEdgeZone,
})

// PossibleExtendedLocationTypesValues returns the possible values for the ExtendedLocationTypes const type.
func PossibleExtendedLocationTypesValues() []ExtendedLocationTypes {
	return extendedLocationTypesValues.Values()
}

func (v ExtendedLocationTypes) MarshalJSON() ([]byte, error) {
	return extendedLocationTypesValues.Marshal(v)
}

func (v *ExtendedLocationTypes) UnmarshalJSON(b []byte) error {
	return extendedLocationTypesValues.Unmarshal(b, v)
}

// GalleryProvisioningState - The provisioning state, which only appears in the response.
type GalleryProvisioningState string

const (
	GalleryProvisioningStateCreating  GalleryProvisioningState = "Creating"
	GalleryProvisioningStateDeleting  GalleryProvisioningState = "Deleting"
	GalleryProvisioningStateFailed    GalleryProvisioningState = "Failed"
	GalleryProvisioningStateMigrating GalleryProvisioningState = "Migrating"
	GalleryProvisioningStateSucceeded GalleryProvisioningState = "Succeeded"
	GalleryProvisioningStateUpdating  GalleryProvisioningState = "Updating"
)

var galleryProvisioningStateValues = openenum.New("GalleryProvisioningState", []GalleryProvisioningState{
	GalleryProvisioningStateCreating,
	GalleryProvisioningStateDeleting,
	GalleryProvisioningStateFailed,
	GalleryProvisioningStateMigrating,
	GalleryProvisioningStateSucceeded,
	GalleryProvisioningStateUpdating,
})

// PossibleGalleryProvisioningStateValues returns the possible values for the GalleryProvisioningState const type.
func PossibleGalleryProvisioningStateValues() []GalleryProvisioningState {
	return galleryProvisioningStateValues.Values()
}

func (v GalleryProvisioningState) MarshalJSON() ([]byte, error) {
	return galleryProvisioningStateValues.Marshal(v)
}

func (v *GalleryProvisioningState) UnmarshalJSON(b []byte) error {
	return galleryProvisioningStateValues.Unmarshal(b, v)
}

// HyperVGeneration - The hypervisor generation of the Virtual Machine. Applicable to OS disks only.
type HyperVGeneration string

const (
	HyperVGenerationV1 HyperVGeneration = "V1"
	HyperVGenerationV2 HyperVGeneration = "V2"
)

var hyperVGenerationValues = openenum.New("HyperVGeneration", []HyperVGeneration{
	HyperVGenerationV1,
	HyperVGenerationV2,
})

// PossibleHyperVGenerationValues returns the possible values for the HyperVGeneration const type.
func PossibleHyperVGenerationValues() []HyperVGeneration {
	return hyperVGenerationValues.Values()
}

func (v HyperVGeneration) MarshalJSON() ([]byte, error) {
	return hyperVGenerationValues.Marshal(v)
}

func (v *HyperVGeneration) UnmarshalJSON(b []byte) error {
	return hyperVGenerationValues.Unmarshal(b, v)
}

// IPVersions - Available from Api-Version 2017-03-30 onwards, it represents whether the specific ipconfiguration is IPv4 or IPv6.
type IPVersions string

const (
	IPVersionsIPv4 IPVersions = "IPv4"
	IPVersionsIPv6 IPVersions = "IPv6"
)

var ipVersionsValues = openenum.New("IPVersions", []IPVersions{
	IPVersionsIPv4,
	IPVersionsIPv6,
})

// PossibleIPVersionsValues returns the possible values for the IPVersions const type.
func PossibleIPVersionsValues() []IPVersions {
	return ipVersionsValues.Values()
}

func (v IPVersions) MarshalJSON() ([]byte, error) {
	return ipVersionsValues.Marshal(v)
}

func (v *IPVersions) UnmarshalJSON(b []byte) error {
	return ipVersionsValues.Unmarshal(b, v)
}

// InstanceViewTypes - The expand expression to apply on the operation.
type InstanceViewTypes string

const (
	InstanceViewTypesInstanceView InstanceViewTypes = "instanceView"
	InstanceViewTypesUserData     InstanceViewTypes = "userData"
)

var instanceViewTypesValues = openenum.New("InstanceViewTypes", []InstanceViewTypes{
	InstanceViewTypesInstanceView,
	InstanceViewTypesUserData,
}, openenum.Closed())

// PossibleInstanceViewTypesValues returns the possible values for the InstanceViewTypes const type.
func PossibleInstanceViewTypesValues() []InstanceViewTypes {
	return instanceViewTypesValues.Values()
}

func (v InstanceViewTypes) MarshalJSON() ([]byte, error) {
	return instanceViewTypesValues.Marshal(v)
}

func (v *InstanceViewTypes) UnmarshalJSON(b []byte) error {
	return instanceViewTypesValues.Unmarshal(b, v)
}

// NetworkAPIVersion - specifies the Microsoft.Network API version used when creating networking resources in the Network Interface Configurations
type NetworkAPIVersion string

const (
	NetworkAPIVersionTwoThousandTwenty1101    NetworkAPIVersion = "2020-11-01"
	NetworkAPIVersionTwoThousandTwentyTwo1101 NetworkAPIVersion = "2022-11-01"
)

var networkAPIVersionValues = openenum.New("NetworkAPIVersion", []NetworkAPIVersion{
	NetworkAPIVersionTwoThousandTwenty1101,
	NetworkAPIVersionTwoThousandTwentyTwo1101,
})

// PossibleNetworkAPIVersionValues returns the possible values for the NetworkAPIVersion const type.
func PossibleNetworkAPIVersionValues() []NetworkAPIVersion {
	return networkAPIVersionValues.Values()
}

func (v NetworkAPIVersion) MarshalJSON() ([]byte, error) {
	return networkAPIVersionValues.Marshal(v)
}

func (v *NetworkAPIVersion) UnmarshalJSON(b []byte) error {
	return networkAPIVersionValues.Unmarshal(b, v)
}

// OperatingSystemStateTypes - This property allows the user to specify whether the virtual machines created under this image are 'Generalized' or 'Specialized'.
type OperatingSystemStateTypes string

const (
	OperatingSystemStateTypesGeneralized OperatingSystemStateTypes = "Generalized"
	OperatingSystemStateTypesSpecialized OperatingSystemStateTypes = "Specialized"
)

var operatingSystemStateTypesValues = openenum.New("OperatingSystemStateTypes", []OperatingSystemStateTypes{
	OperatingSystemStateTypesGeneralized,
	OperatingSystemStateTypesSpecialized,
}, openenum.Closed())

// PossibleOperatingSystemStateTypesValues returns the possible values for the OperatingSystemStateTypes const type.
func PossibleOperatingSystemStateTypesValues() []OperatingSystemStateTypes {
	return operatingSystemStateTypesValues.Values()
}

func (v OperatingSystemStateTypes) MarshalJSON() ([]byte, error) {
	return operatingSystemStateTypesValues.Marshal(v)
}

func (v *OperatingSystemStateTypes) UnmarshalJSON(b []byte) error {
	return operatingSystemStateTypesValues.Unmarshal(b, v)
}

// OperatingSystemTypes - The Operating System type.
type OperatingSystemTypes string

const (
	OperatingSystemTypesLinux   OperatingSystemTypes = "Linux"
	OperatingSystemTypesWindows OperatingSystemTypes = "Windows"
)

var operatingSystemTypesValues = openenum.New("OperatingSystemTypes", []OperatingSystemTypes{
	OperatingSystemTypesLinux,
	OperatingSystemTypesWindows,
}, openenum.Closed())

// PossibleOperatingSystemTypesValues returns the possible values for the OperatingSystemTypes const type.
func PossibleOperatingSystemTypesValues() []OperatingSystemTypes {
	return operatingSystemTypesValues.Values()
}

func (v OperatingSystemTypes) MarshalJSON() ([]byte, error) {
	return operatingSystemTypesValues.Marshal(v)
}

func (v *OperatingSystemTypes) UnmarshalJSON(b []byte) error {
	return operatingSystemTypesValues.Unmarshal(b, v)
}

// OrchestrationMode - Specifies the orchestration mode for the virtual machine scale set.
type OrchestrationMode string

const (
	OrchestrationModeFlexible OrchestrationMode = "Flexible"
	OrchestrationModeUniform  OrchestrationMode = "Uniform"
)

var orchestrationModeValues = openenum.New("OrchestrationMode", []OrchestrationMode{
	OrchestrationModeFlexible,
	OrchestrationModeUniform,
})

// PossibleOrchestrationModeValues returns the possible values for the OrchestrationMode const type.
func PossibleOrchestrationModeValues() []OrchestrationMode {
	return orchestrationModeValues.Values()
}

func (v OrchestrationMode) MarshalJSON() ([]byte, error) {
	return orchestrationModeValues.Marshal(v)
}

func (v *OrchestrationMode) UnmarshalJSON(b []byte) error {
	return orchestrationModeValues.Unmarshal(b, v)
}

// PassNames - The pass name. Currently, the only allowable value is OobeSystem.
type PassNames string

const (
	PassNamesOobeSystem PassNames = "OobeSystem"
)

var passNamesValues = openenum.New("PassNames", []PassNames{
	PassNamesOobeSystem,
}, openenum.Closed())

// PossiblePassNamesValues returns the possible values for the PassNames const type.
func PossiblePassNamesValues() []PassNames {
	return passNamesValues.Values()
}

func (v PassNames) MarshalJSON() ([]byte, error) {
	return passNamesValues.Marshal(v)
}

func (v *PassNames) UnmarshalJSON(b []byte) error {
	return passNamesValues.Unmarshal(b, v)
}

// ProtocolTypes - Specifies the protocol of WinRM listener.
type ProtocolTypes string

const (
	ProtocolTypesHTTP  ProtocolTypes = "Http"
	ProtocolTypesHTTPS ProtocolTypes = "Https"
)

var protocolTypesValues = openenum.New("ProtocolTypes", []ProtocolTypes{
	ProtocolTypesHTTP,
	ProtocolTypesHTTPS,
}, openenum.Closed())

// PossibleProtocolTypesValues returns the possible values for the ProtocolTypes const type.
func PossibleProtocolTypesValues() []ProtocolTypes {
	return protocolTypesValues.Values()
}

func (v ProtocolTypes) MarshalJSON() ([]byte, error) {
	return protocolTypesValues.Marshal(v)
}

func (v *ProtocolTypes) UnmarshalJSON(b []byte) error {
	return protocolTypesValues.Unmarshal(b, v)
}

// ResourceIdentityType - The type of identity used for the virtual machine. The type 'SystemAssigned, UserAssigned' includes both an implicitly created identity and a set of user assigned identities.
type ResourceIdentityType string

const (
	ResourceIdentityTypeNone                       ResourceIdentityType = "None"
	ResourceIdentityTypeSystemAssigned             ResourceIdentityType = "SystemAssigned"
	ResourceIdentityTypeSystemAssignedUserAssigned ResourceIdentityType = "SystemAssigned, UserAssigned"
	ResourceIdentityTypeUserAssigned               ResourceIdentityType = "UserAssigned"
)

var resourceIdentityTypeValues = openenum.New("ResourceIdentityType", []ResourceIdentityType{
	ResourceIdentityTypeNone,
	ResourceIdentityTypeSystemAssigned,
	ResourceIdentityTypeSystemAssignedUserAssigned,
	ResourceIdentityTypeUserAssigned,
}, openenum.Closed())

// PossibleResourceIdentityTypeValues returns the possible values for the ResourceIdentityType const type.
func PossibleResourceIdentityTypeValues() []ResourceIdentityType {
	return resourceIdentityTypeValues.Values()
}

func (v ResourceIdentityType) MarshalJSON() ([]byte, error) {
	return resourceIdentityTypeValues.Marshal(v)
}

func (v *ResourceIdentityType) UnmarshalJSON(b []byte) error {
	return resourceIdentityTypeValues.Unmarshal(b, v)
}

// SecurityTypes - Specifies the SecurityType of the virtual machine.
type SecurityTypes string

const (
	SecurityTypesConfidentialVM SecurityTypes = "ConfidentialVM"
	SecurityTypesTrustedLaunch  SecurityTypes = "TrustedLaunch"
)

var securityTypesValues = openenum.New("SecurityTypes", []SecurityTypes{
	SecurityTypesConfidentialVM,
	SecurityTypesTrustedLaunch,
})

// PossibleSecurityTypesValues returns the possible values for the SecurityTypes const type.
func PossibleSecurityTypesValues() []SecurityTypes {
	return securityTypesValues.Values()
}

func (v SecurityTypes) MarshalJSON() ([]byte, error) {
	return securityTypesValues.Marshal(v)
}

func (v *SecurityTypes) UnmarshalJSON(b []byte) error {
	return securityTypesValues.Unmarshal(b, v)
}

// SettingNames - Specifies the name of the setting to which the content applies.
type SettingNames string

const (
	SettingNamesAutoLogon          SettingNames = "AutoLogon"
	SettingNamesFirstLogonCommands SettingNames = "FirstLogonCommands"
)

var settingNamesValues = openenum.New("SettingNames", []SettingNames{
	SettingNamesAutoLogon,
	SettingNamesFirstLogonCommands,
}, openenum.Closed())

// PossibleSettingNamesValues returns the possible values for the SettingNames const type.
func PossibleSettingNamesValues() []SettingNames {
	return settingNamesValues.Values()
}

func (v SettingNames) MarshalJSON() ([]byte, error) {
	return settingNamesValues.Marshal(v)
}

func (v *SettingNames) UnmarshalJSON(b []byte) error {
	return settingNamesValues.Unmarshal(b, v)
}

// StatusLevelTypes - The level code.
type StatusLevelTypes string

const (
	StatusLevelTypesError   StatusLevelTypes = "Error"
	StatusLevelTypesInfo    StatusLevelTypes = "Info"
	StatusLevelTypesWarning StatusLevelTypes = "Warning"
)

var statusLevelTypesValues = openenum.New("StatusLevelTypes", []StatusLevelTypes{
	StatusLevelTypesError,
	StatusLevelTypesInfo,
	StatusLevelTypesWarning,
}, openenum.Closed())

// PossibleStatusLevelTypesValues returns the possible values for the StatusLevelTypes const type.
func PossibleStatusLevelTypesValues() []StatusLevelTypes {
	return statusLevelTypesValues.Values()
}

func (v StatusLevelTypes) MarshalJSON() ([]byte, error) {
	return statusLevelTypesValues.Marshal(v)
}

func (v *StatusLevelTypes) UnmarshalJSON(b []byte) error {
	return statusLevelTypesValues.Unmarshal(b, v)
}

// StorageAccountType - Specifies the storage account type to be used to store the image. This property is not updatable.
type StorageAccountType string

const (
	StorageAccountTypePremiumLRS  StorageAccountType = "Premium_LRS"
	StorageAccountTypeStandardLRS StorageAccountType = "Standard_LRS"
	StorageAccountTypeStandardZRS StorageAccountType = "Standard_ZRS"
)

var storageAccountTypeValues = openenum.New("StorageAccountType", []StorageAccountType{
	StorageAccountTypePremiumLRS,
	StorageAccountTypeStandardLRS,
	StorageAccountTypeStandardZRS,
})

// PossibleStorageAccountTypeValues returns the possible values for the StorageAccountType const type.
func PossibleStorageAccountTypeValues() []StorageAccountType {
	return storageAccountTypeValues.Values()
}

func (v StorageAccountType) MarshalJSON() ([]byte, error) {
	return storageAccountTypeValues.Marshal(v)
}

func (v *StorageAccountType) UnmarshalJSON(b []byte) error {
	return storageAccountTypeValues.Unmarshal(b, v)
}

// StorageAccountTypes - Specifies the storage account type for the managed disk. NOTE: UltraSSD_LRS can only be used with data disks, it cannot be used with OS Disk.
type StorageAccountTypes string

const (
	StorageAccountTypesPremiumLRS     StorageAccountTypes = "Premium_LRS"
	StorageAccountTypesPremiumV2LRS   StorageAccountTypes = "PremiumV2_LRS"
	StorageAccountTypesPremiumZRS     StorageAccountTypes = "Premium_ZRS"
	StorageAccountTypesStandardLRS    StorageAccountTypes = "Standard_LRS"
	StorageAccountTypesStandardSSDLRS StorageAccountTypes = "StandardSSD_LRS"
	StorageAccountTypesStandardSSDZRS StorageAccountTypes = "StandardSSD_ZRS"
	StorageAccountTypesUltraSSDLRS    StorageAccountTypes = "UltraSSD_LRS"
)

var storageAccountTypesValues = openenum.New("StorageAccountTypes", []StorageAccountTypes{
	StorageAccountTypesPremiumLRS,
	StorageAccountTypesPremiumV2LRS,
	StorageAccountTypesPremiumZRS,
	StorageAccountTypesStandardLRS,
	StorageAccountTypesStandardSSDLRS,
	StorageAccountTypesStandardSSDZRS,
	StorageAccountTypesUltraSSDLRS,
})

// PossibleStorageAccountTypesValues returns the possible values for the StorageAccountTypes const type.
func PossibleStorageAccountTypesValues() []StorageAccountTypes {
	return storageAccountTypesValues.Values()
}

func (v StorageAccountTypes) MarshalJSON() ([]byte, error) {
	return storageAccountTypesValues.Marshal(v)
}

func (v *StorageAccountTypes) UnmarshalJSON(b []byte) error {
	return storageAccountTypesValues.Unmarshal(b, v)
}

// UpgradeMode - Specifies the mode of an upgrade to virtual machines in the scale set.
type UpgradeMode string

const (
	UpgradeModeAutomatic UpgradeMode = "Automatic"
	UpgradeModeManual    UpgradeMode = "Manual"
	UpgradeModeRolling   UpgradeMode = "Rolling"
)

var upgradeModeValues = openenum.New("UpgradeMode", []UpgradeMode{
	UpgradeModeAutomatic,
	UpgradeModeManual,
	UpgradeModeRolling,
}, openenum.Closed())

// PossibleUpgradeModeValues returns the possible values for the UpgradeMode const type.
func PossibleUpgradeModeValues() []UpgradeMode {
	return upgradeModeValues.Values()
}

func (v UpgradeMode) MarshalJSON() ([]byte, error) {
	return upgradeModeValues.Marshal(v)
}

func (v *UpgradeMode) UnmarshalJSON(b []byte) error {
	return upgradeModeValues.Unmarshal(b, v)
}

// VirtualMachineEvictionPolicyTypes - Specifies the eviction policy for the Azure Spot VM/VMSS
type VirtualMachineEvictionPolicyTypes string

const (
	VirtualMachineEvictionPolicyTypesDeallocate VirtualMachineEvictionPolicyTypes = "Deallocate"
	VirtualMachineEvictionPolicyTypesDelete     VirtualMachineEvictionPolicyTypes = "Delete"
)

var virtualMachineEvictionPolicyTypesValues = openenum.New("VirtualMachineEvictionPolicyTypes", []VirtualMachineEvictionPolicyTypes{
	VirtualMachineEvictionPolicyTypesDeallocate,
	VirtualMachineEvictionPolicyTypesDelete,
})

// PossibleVirtualMachineEvictionPolicyTypesValues returns the possible values for the VirtualMachineEvictionPolicyTypes const type.
func PossibleVirtualMachineEvictionPolicyTypesValues() []VirtualMachineEvictionPolicyTypes {
	return virtualMachineEvictionPolicyTypesValues.Values()
}

func (v VirtualMachineEvictionPolicyTypes) MarshalJSON() ([]byte, error) {
	return virtualMachineEvictionPolicyTypesValues.Marshal(v)
}

func (v *VirtualMachineEvictionPolicyTypes) UnmarshalJSON(b []byte) error {
	return virtualMachineEvictionPolicyTypesValues.Unmarshal(b, v)
}

// VirtualMachinePriorityTypes - Specifies the priority for a standalone virtual machine or the virtual machines in the scale set.
type VirtualMachinePriorityTypes string

const (
	VirtualMachinePriorityTypesLow     VirtualMachinePriorityTypes = "Low"
	VirtualMachinePriorityTypesRegular VirtualMachinePriorityTypes = "Regular"
	VirtualMachinePriorityTypesSpot    VirtualMachinePriorityTypes = "Spot"
)

var virtualMachinePriorityTypesValues = openenum.New("VirtualMachinePriorityTypes", []VirtualMachinePriorityTypes{
	VirtualMachinePriorityTypesLow,
	VirtualMachinePriorityTypesRegular,
	VirtualMachinePriorityTypesSpot,
})

// PossibleVirtualMachinePriorityTypesValues returns the possible values for the VirtualMachinePriorityTypes const type.
func PossibleVirtualMachinePriorityTypesValues() []VirtualMachinePriorityTypes {
	return virtualMachinePriorityTypesValues.Values()
}

func (v VirtualMachinePriorityTypes) MarshalJSON() ([]byte, error) {
	return virtualMachinePriorityTypesValues.Marshal(v)
}

func (v *VirtualMachinePriorityTypes) UnmarshalJSON(b []byte) error {
	return virtualMachinePriorityTypesValues.Unmarshal(b, v)
}

// VirtualMachineSizeTypes - Specifies the size of the virtual machine. Only a subset of sizes is declared; newer sizes decode as unknown values.
type VirtualMachineSizeTypes string

const (
	VirtualMachineSizeTypesBasicA0       VirtualMachineSizeTypes = "Basic_A0"
	VirtualMachineSizeTypesBasicA1       VirtualMachineSizeTypes = "Basic_A1"
	VirtualMachineSizeTypesStandardA1V2  VirtualMachineSizeTypes = "Standard_A1_v2"
	VirtualMachineSizeTypesStandardA2mV2 VirtualMachineSizeTypes = "Standard_A2m_v2"
	VirtualMachineSizeTypesStandardB1ms  VirtualMachineSizeTypes = "Standard_B1ms"
	VirtualMachineSizeTypesStandardB1s   VirtualMachineSizeTypes = "Standard_B1s"
	VirtualMachineSizeTypesStandardB2ms  VirtualMachineSizeTypes = "Standard_B2ms"
	VirtualMachineSizeTypesStandardB2s   VirtualMachineSizeTypes = "Standard_B2s"
	VirtualMachineSizeTypesStandardD2V3  VirtualMachineSizeTypes = "Standard_D2_v3"
	VirtualMachineSizeTypesStandardD2sV3 VirtualMachineSizeTypes = "Standard_D2s_v3"
	VirtualMachineSizeTypesStandardD4sV3 VirtualMachineSizeTypes = "Standard_D4s_v3"
	VirtualMachineSizeTypesStandardD8sV3 VirtualMachineSizeTypes = "Standard_D8s_v3"
	VirtualMachineSizeTypesStandardDS1V2 VirtualMachineSizeTypes = "Standard_DS1_v2"
	VirtualMachineSizeTypesStandardDS2V2 VirtualMachineSizeTypes = "Standard_DS2_v2"
	VirtualMachineSizeTypesStandardE4V3  VirtualMachineSizeTypes = "Standard_E4_v3"
	VirtualMachineSizeTypesStandardE8sV3 VirtualMachineSizeTypes = "Standard_E8s_v3"
	VirtualMachineSizeTypesStandardF2sV2 VirtualMachineSizeTypes = "Standard_F2s_v2"
	VirtualMachineSizeTypesStandardGS5   VirtualMachineSizeTypes = "Standard_GS5"
	VirtualMachineSizeTypesStandardL8sV2 VirtualMachineSizeTypes = "Standard_L8s_v2"
	VirtualMachineSizeTypesStandardM128s VirtualMachineSizeTypes = "Standard_M128s"
	VirtualMachineSizeTypesStandardNC6   VirtualMachineSizeTypes = "Standard_NC6"
	VirtualMachineSizeTypesStandardNV6   VirtualMachineSizeTypes = "Standard_NV6"
)

var virtualMachineSizeTypesValues = openenum.New("VirtualMachineSizeTypes", []VirtualMachineSizeTypes{
	VirtualMachineSizeTypesBasicA0,
	VirtualMachineSizeTypesBasicA1,
	VirtualMachineSizeTypesStandardA1V2,
	VirtualMachineSizeTypesStandardA2mV2,
	VirtualMachineSizeTypesStandardB1ms,
	VirtualMachineSizeTypesStandardB1s,
	VirtualMachineSizeTypesStandardB2ms,
	VirtualMachineSizeTypesStandardB2s,
	VirtualMachineSizeTypesStandardD2V3,
	VirtualMachineSizeTypesStandardD2sV3,
	VirtualMachineSizeTypesStandardD4sV3,
	VirtualMachineSizeTypesStandardD8sV3,
	VirtualMachineSizeTypesStandardDS1V2,
	VirtualMachineSizeTypesStandardDS2V2,
	VirtualMachineSizeTypesStandardE4V3,
	VirtualMachineSizeTypesStandardE8sV3,
	VirtualMachineSizeTypesStandardF2sV2,
	VirtualMachineSizeTypesStandardGS5,
	VirtualMachineSizeTypesStandardL8sV2,
	VirtualMachineSizeTypesStandardM128s,
	VirtualMachineSizeTypesStandardNC6,
	VirtualMachineSizeTypesStandardNV6,
})

// PossibleVirtualMachineSizeTypesValues returns the possible values for the VirtualMachineSizeTypes const type.
func PossibleVirtualMachineSizeTypesValues() []VirtualMachineSizeTypes {
	return virtualMachineSizeTypesValues.Values()
}

func (v VirtualMachineSizeTypes) MarshalJSON() ([]byte, error) {
	return virtualMachineSizeTypesValues.Marshal(v)
}

func (v *VirtualMachineSizeTypes) UnmarshalJSON(b []byte) error {
	return virtualMachineSizeTypesValues.Unmarshal(b, v)
}

// Enums indexes every enumeration declared by this package.
var Enums = openenum.NewCatalog(
	architectureValues,
	cachingTypesValues,
	componentNamesValues,
	deleteOptionsValues,
	diskCreateOptionValues,
	diskCreateOptionTypesValues,
	diskDeleteOptionTypesValues,
	diskStateValues,
	diskStorageAccountTypesValues,
	extendedLocationTypesValues,
	galleryProvisioningStateValues,
	hyperVGenerationValues,
	ipVersionsValues,
	instanceViewTypesValues,
	networkAPIVersionValues,
	operatingSystemStateTypesValues,
	operatingSystemTypesValues,
	orchestrationModeValues,
	passNamesValues,
	protocolTypesValues,
	resourceIdentityTypeValues,
	securityTypesValues,
	settingNamesValues,
	statusLevelTypesValues,
	storageAccountTypeValues,
	storageAccountTypesValues,
	upgradeModeValues,
	virtualMachineEvictionPolicyTypesValues,
	virtualMachinePriorityTypesValues,
	virtualMachineSizeTypesValues,
)

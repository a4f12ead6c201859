// Package words holds the vocabulary the sign cycles through.
package words

import "math/rand"

// Random returns one entry from List.
func Random() string {
	return List[rand.Intn(len(List))]
}

// List is the mineral vocabulary shown on the sign.
var List = []string{
	"Acanthite", "Actinolite", "Adamite", "Aegirine", "Agate",
	"Albite", "Almandine", "Amazonite", "Amber", "Amethyst",
	"Ametrine", "Analcime", "Anatase", "Andalusite", "Andesine",
	"Andradite", "Anglesite", "Anhydrite", "Ankerite", "Anorthite",
	"Antlerite", "Apatite", "Aragonite", "Augite", "Autunite",
	"Aventurine", "Axinite", "Azurite",
	"Barite", "Benitoite", "Beryl", "Biotite", "Bismuth",
	"Bloodstone", "Boleite", "Bornite", "Bronzite", "Brookite",
	"Brucite",
	"Calcite", "Carnelian", "Carnotite", "Celestine", "Cerussite",
	"Chabazite", "Chalcedony", "Chalcocite", "Charoite", "Chlorite",
	"Chromite", "Chrysocola", "Cinnabar", "Citrine", "Cobaltite",
	"Colemanite", "Columbite", "Copper", "Coral", "Cordierite",
	"Corundum", "Covellite", "Crocoite", "Cryolite", "Cuprite",
	"Danburite", "Datolite", "Demantoid", "Diamond", "Diaspore",
	"Diopside", "Dioptase", "Dolomite",
	"Ekanite", "Elbaite", "Emerald", "Enargite", "Enstatite",
	"Epidote", "Epsomite", "Erythrite", "Euclase", "Eudialyte",
	"Euxenite",
	"Fayalite", "Feldspar", "Ferberite", "Fluorite", "Forsterite",
	"Fuchsite",
	"Gadolinite", "Gahnite", "Galena", "Garnet", "Gaspeite",
	"Gehlenite", "Gibbsite", "Glauberite", "Goethite", "Gold",
	"Goshenite", "Graphite", "Grossular", "Gypsum",
	"Hackmanite", "Halite", "Hauyne", "Heliodor", "Hematite",
	"Herderite", "Hessonite", "Hibonite", "Hiddenite", "Hornblende",
	"Howlite", "Hubnerite", "Humite",
	"Idocrase", "Ilmenite", "Inesite", "Iolite",
	"Jade", "Jadeite", "Jasper", "Jet",
	"Kaolinite", "Kernite", "Kieserite", "Kinoite", "Kunzite",
	"Kyanite",
	"Larimar", "Laumontite", "Lawsonite", "Lazulite", "Lazurite",
	"Legrandite", "Lepidolite", "Leucite", "Linarite", "Lizardite",
	"Magnesite", "Magnetite", "Malachite", "Manganite", "Marcasite",
	"Meionite", "Mesolite", "Microcline", "Microlite", "Millerite",
	"Mimetite", "Moldavite", "Monazite", "Moonstone", "Mordenite",
	"Morganite", "Muscovite",
	"Natrolite", "Nepheline", "Nephrite", "Niccolite", "Nuummite",
	"Obsidian", "Oligoclase", "Olivine", "Onyx", "Opal", "Orpiment",
	"Orthoclase",
	"Painite", "Pargasite", "Pectolite", "Periclase", "Peridot",
	"Perovskite", "Petalite", "Phenakite", "Phlogopite", "Pietersite",
	"Platinum", "Plancheite", "Pollucite", "Powellite", "Prehnite",
	"Proustite", "Purpurite", "Pyrite", "Pyrolusite", "Pyrope",
	"Pyrrhotite",
	"Quartz",
	"Raspite", "Realgar", "Rhodizite", "Rhodolite", "Rhodonite",
	"Rosasite", "Rubellite", "Ruby", "Rutile",
	"Samarskite", "Sanidine", "Sapphire", "Sardonyx", "Scapolite",
	"Scheelite", "Schorl", "Scolecite", "Scorodite", "Selenite",
	"Serandite", "Serpentine", "Siderite", "Silver",
	"Sinhalite", "Sodalite", "Sphalerite", "Sphene",
	"Spinel", "Spodumene", "Stannite", "Staurolite", "Stibnite",
	"Stilbite", "Strengite", "Sugilite", "Sulfur", "Sunstone",
	"Taaffeite", "Talc", "Tantalite", "Tanzanite", "Tektite",
	"Tennantite", "Tephroite", "Thomsonite", "Titanite", "Topaz",
	"Torbernite", "Tourmaline", "Tremolite", "Triphylite", "Triplite",
	"Troilite", "Tsavorite", "Tugtupite", "Turquoise",
	"Ulexite", "Uraninite", "Uvarovite", "Uvite",
	"Vanadinite", "Variscite", "Vivianite",
	"Wardite", "Wavellite", "Willemite", "Witherite", "Wolframite",
	"Wulfenite", "Wurtzite",
	"Xenotime",
	"Zektzerite", "Zeolite", "Zincite", "Zircon", "Zoisite",
}

package species

var names = [...]string{
	0x01: "RHYDON",
	0x02: "KANGASKHAN",
	0x03: "NIDORAN_M",
	0x04: "CLEFAIRY",
	0x05: "SPEAROW",
	0x06: "VOLTORB",
	0x07: "NIDOKING",
	0x08: "SLOWBRO",
	0x09: "IVYSAUR",
	0x0a: "EXEGGUTOR",
	0x0b: "LICKITUNG",
	0x0c: "EXEGGCUTE",
	0x0d: "GRIMER",
	0x0e: "GENGAR",
	0x0f: "NIDORAN_F",
	0x10: "NIDOQUEEN",
	0x11: "CUBONE",
	0x12: "RHYHORN",
	0x13: "LAPRAS",
	0x14: "ARCANINE",
	0x15: "MEW",
	0x16: "GYARADOS",
	0x17: "SHELLDER",
	0x18: "TENTACOOL",
	0x19: "GASTLY",
	0x1a: "SCYTHER",
	0x1b: "STARYU",
	0x1c: "BLASTOISE",
	0x1d: "PINSIR",
	0x1e: "TANGELA",
	0x1f: "MISSINGNO",
	0x20: "MISSINGNO",
	0x21: "GROWLITHE",
	0x22: "ONIX",
	0x23: "FEAROW",
	0x24: "PIDGEY",
	0x25: "SLOWPOKE",
	0x26: "KADABRA",
	0x27: "GRAVELER",
	0x28: "CHANSEY",
	0x29: "MACHOKE",
	0x2a: "MR_MIME",
	0x2b: "HITMONLEE",
	0x2c: "HITMONCHAN",
	0x2d: "ARBOK",
	0x2e: "PARASECT",
	0x2f: "PSYDUCK",
	0x30: "DROWZEE",
	0x31: "GOLEM",
	0x32: "MISSINGNO",
	0x33: "MAGMAR",
	0x34: "MISSINGNO",
	0x35: "ELECTABUZZ",
	0x36: "MAGNETON",
	0x37: "KOFFING",
	0x38: "MISSINGNO",
	0x39: "MANKEY",
	0x3a: "SEEL",
	0x3b: "DIGLETT",
	0x3c: "TAUROS",
	0x3d: "MISSINGNO",
	0x3e: "MISSINGNO",
	0x3f: "MISSINGNO",
	0x40: "FARFETCHD",
	0x41: "VENONAT",
	0x42: "DRAGONITE",
	0x43: "MISSINGNO",
	0x44: "MISSINGNO",
	0x45: "MISSINGNO",
	0x46: "DODUO",
	0x47: "POLIWAG",
	0x48: "JYNX",
	0x49: "MOLTRES",
	0x4a: "ARTICUNO",
	0x4b: "ZAPDOS",
	0x4c: "DITTO",
	0x4d: "MEOWTH",
	0x4e: "KRABBY",
	0x4f: "MISSINGNO",
	0x50: "MISSINGNO",
	0x51: "MISSINGNO",
	0x52: "VULPIX",
	0x53: "NINETALES",
	0x54: "PIKACHU",
	0x55: "RAICHU",
	0x56: "MISSINGNO",
	0x57: "MISSINGNO",
	0x58: "DRATINI",
	0x59: "DRAGONAIR",
	0x5a: "KABUTO",
	0x5b: "KABUTOPS",
	0x5c: "HORSEA",
	0x5d: "SEADRA",
	0x5e: "MISSINGNO",
	0x5f: "MISSINGNO",
	0x60: "SANDSHREW",
	0x61: "SANDSLASH",
	0x62: "OMANYTE",
	0x63: "OMASTAR",
	0x64: "JIGGLYPUFF",
	0x65: "WIGGLYTUFF",
	0x66: "EEVEE",
	0x67: "FLAREON",
	0x68: "JOLTEON",
	0x69: "VAPOREON",
	0x6a: "MACHOP",
	0x6b: "ZUBAT",
	0x6c: "EKANS",
	0x6d: "PARAS",
	0x6e: "POLIWHIRL",
	0x6f: "POLIWRATH",
	0x70: "WEEDLE",
	0x71: "KAKUNA",
	0x72: "BEEDRILL",
	0x73: "MISSINGNO",
	0x74: "DODRIO",
	0x75: "PRIMEAPE",
	0x76: "DUGTRIO",
	0x77: "VENOMOTH",
	0x78: "DEWGONG",
	0x79: "MISSINGNO",
	0x7a: "MISSINGNO",
	0x7b: "CATERPIE",
	0x7c: "METAPOD",
	0x7d: "BUTTERFREE",
	0x7e: "MACHAMP",
	0x7f: "MISSINGNO",
	0x80: "GOLDUCK",
	0x81: "HYPNO",
	0x82: "GOLBAT",
	0x83: "MEWTWO",
	0x84: "SNORLAX",
	0x85: "MAGIKARP",
	0x86: "MISSINGNO",
	0x87: "MISSINGNO",
	0x88: "MUK",
	0x89: "MISSINGNO",
	0x8a: "KINGLER",
	0x8b: "CLOYSTER",
	0x8c: "MISSINGNO",
	0x8d: "ELECTRODE",
	0x8e: "CLEFABLE",
	0x8f: "WEEZING",
	0x90: "PERSIAN",
	0x91: "MAROWAK",
	0x92: "MISSINGNO",
	0x93: "HAUNTER",
	0x94: "ABRA",
	0x95: "ALAKAZAM",
	0x96: "PIDGEOTTO",
	0x97: "PIDGEOT",
	0x98: "STARMIE",
	0x99: "BULBASAUR",
	0x9a: "VENUSAUR",
	0x9b: "TENTACRUEL",
	0x9c: "MISSINGNO",
	0x9d: "GOLDEEN",
	0x9e: "SEAKING",
	0x9f: "MISSINGNO",
	0xa0: "MISSINGNO",
	0xa1: "MISSINGNO",
	0xa2: "MISSINGNO",
	0xa3: "PONYTA",
	0xa4: "RAPIDASH",
	0xa5: "RATTATA",
	0xa6: "RATICATE",
	0xa7: "NIDORINO",
	0xa8: "NIDORINA",
	0xa9: "GEODUDE",
	0xaa: "PORYGON",
	0xab: "AERODACTYL",
	0xac: "MISSINGNO",
	0xad: "MAGNEMITE",
	0xae: "MISSINGNO",
	0xaf: "MISSINGNO",
	0xb0: "CHARMANDER",
	0xb1: "SQUIRTLE",
	0xb2: "CHARMELEON",
	0xb3: "WARTORTLE",
	0xb4: "CHARIZARD",
	0xb5: "MISSINGNO",
	0xb6: "MISSINGNO",
	0xb7: "MISSINGNO",
	0xb8: "MISSINGNO",
	0xb9: "ODDISH",
	0xba: "GLOOM",
	0xbb: "VILEPLUME",
	0xbc: "BELLSPROUT",
	0xbd: "WEEPINBELL",
	0xbe: "VICTREEBEL",
}

// dex maps a Pokédex number to an internal species ID
var dex = [PokedexSize + 1]uint8{
	1: 0x99, 2: 0x09, 3: 0x9a, 4: 0xb0, 5: 0xb2, 6: 0xb4,
	7: 0xb1, 8: 0xb3, 9: 0x1c, 10: 0x7b, 11: 0x7c, 12: 0x7d,
	13: 0x70, 14: 0x71, 15: 0x72, 16: 0x24, 17: 0x96, 18: 0x97,
	19: 0xa5, 20: 0xa6, 21: 0x05, 22: 0x23, 23: 0x6c, 24: 0x2d,
	25: 0x54, 26: 0x55, 27: 0x60, 28: 0x61, 29: 0x0f, 30: 0xa8,
	31: 0x10, 32: 0x03, 33: 0xa7, 34: 0x07, 35: 0x04, 36: 0x8e,
	37: 0x52, 38: 0x53, 39: 0x64, 40: 0x65, 41: 0x6b, 42: 0x82,
	43: 0xb9, 44: 0xba, 45: 0xbb, 46: 0x6d, 47: 0x2e, 48: 0x41,
	49: 0x77, 50: 0x3b, 51: 0x76, 52: 0x4d, 53: 0x90, 54: 0x2f,
	55: 0x80, 56: 0x39, 57: 0x75, 58: 0x21, 59: 0x14, 60: 0x47,
	61: 0x6e, 62: 0x6f, 63: 0x94, 64: 0x26, 65: 0x95, 66: 0x6a,
	67: 0x29, 68: 0x7e, 69: 0xbc, 70: 0xbd, 71: 0xbe, 72: 0x18,
	73: 0x9b, 74: 0xa9, 75: 0x27, 76: 0x31, 77: 0xa3, 78: 0xa4,
	79: 0x25, 80: 0x08, 81: 0xad, 82: 0x36, 83: 0x40, 84: 0x46,
	85: 0x74, 86: 0x3a, 87: 0x78, 88: 0x0d, 89: 0x88, 90: 0x17,
	91: 0x8b, 92: 0x19, 93: 0x93, 94: 0x0e, 95: 0x22, 96: 0x30,
	97: 0x81, 98: 0x4e, 99: 0x8a, 100: 0x06, 101: 0x8d, 102: 0x0c,
	103: 0x0a, 104: 0x11, 105: 0x91, 106: 0x2b, 107: 0x2c, 108: 0x0b,
	109: 0x37, 110: 0x8f, 111: 0x12, 112: 0x01, 113: 0x28, 114: 0x1e,
	115: 0x02, 116: 0x5c, 117: 0x5d, 118: 0x9d, 119: 0x9e, 120: 0x1b,
	121: 0x98, 122: 0x2a, 123: 0x1a, 124: 0x48, 125: 0x35, 126: 0x33,
	127: 0x1d, 128: 0x3c, 129: 0x85, 130: 0x16, 131: 0x13, 132: 0x4c,
	133: 0x66, 134: 0x69, 135: 0x68, 136: 0x67, 137: 0xaa, 138: 0x62,
	139: 0x63, 140: 0x5a, 141: 0x5b, 142: 0xab, 143: 0x84, 144: 0x4a,
	145: 0x4b, 146: 0x49, 147: 0x58, 148: 0x59, 149: 0x42, 150: 0x83,
	151: 0x15,
}

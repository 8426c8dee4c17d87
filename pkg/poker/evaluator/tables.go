package evaluator

// The tables below are a read-only data asset. They are never mutated after
// package initialization, so they may be shared by concurrent evaluations.

// flushes maps the 13-bit rank union of five suited cards to its raw score.
// Straight flushes occupy 1-10 and the remaining flushes 323-1599.
var flushes = map[uint32]uint16{
	0x1f00: 1, 0x0f80: 2, 0x07c0: 3, 0x03e0: 4, 0x01f0: 5, 0x00f8: 6,
	0x007c: 7, 0x003e: 8, 0x001f: 9, 0x100f: 10, 0x1e80: 323, 0x1e40: 324,
	0x1e20: 325, 0x1e10: 326, 0x1e08: 327, 0x1e04: 328, 0x1e02: 329, 0x1e01: 330,
	0x1d80: 331, 0x1d40: 332, 0x1d20: 333, 0x1d10: 334, 0x1d08: 335, 0x1d04: 336,
	0x1d02: 337, 0x1d01: 338, 0x1cc0: 339, 0x1ca0: 340, 0x1c90: 341, 0x1c88: 342,
	0x1c84: 343, 0x1c82: 344, 0x1c81: 345, 0x1c60: 346, 0x1c50: 347, 0x1c48: 348,
	0x1c44: 349, 0x1c42: 350, 0x1c41: 351, 0x1c30: 352, 0x1c28: 353, 0x1c24: 354,
	0x1c22: 355, 0x1c21: 356, 0x1c18: 357, 0x1c14: 358, 0x1c12: 359, 0x1c11: 360,
	0x1c0c: 361, 0x1c0a: 362, 0x1c09: 363, 0x1c06: 364, 0x1c05: 365, 0x1c03: 366,
	0x1b80: 367, 0x1b40: 368, 0x1b20: 369, 0x1b10: 370, 0x1b08: 371, 0x1b04: 372,
	0x1b02: 373, 0x1b01: 374, 0x1ac0: 375, 0x1aa0: 376, 0x1a90: 377, 0x1a88: 378,
	0x1a84: 379, 0x1a82: 380, 0x1a81: 381, 0x1a60: 382, 0x1a50: 383, 0x1a48: 384,
	0x1a44: 385, 0x1a42: 386, 0x1a41: 387, 0x1a30: 388, 0x1a28: 389, 0x1a24: 390,
	0x1a22: 391, 0x1a21: 392, 0x1a18: 393, 0x1a14: 394, 0x1a12: 395, 0x1a11: 396,
	0x1a0c: 397, 0x1a0a: 398, 0x1a09: 399, 0x1a06: 400, 0x1a05: 401, 0x1a03: 402,
	0x19c0: 403, 0x19a0: 404, 0x1990: 405, 0x1988: 406, 0x1984: 407, 0x1982: 408,
	0x1981: 409, 0x1960: 410, 0x1950: 411, 0x1948: 412, 0x1944: 413, 0x1942: 414,
	0x1941: 415, 0x1930: 416, 0x1928: 417, 0x1924: 418, 0x1922: 419, 0x1921: 420,
	0x1918: 421, 0x1914: 422, 0x1912: 423, 0x1911: 424, 0x190c: 425, 0x190a: 426,
	0x1909: 427, 0x1906: 428, 0x1905: 429, 0x1903: 430, 0x18e0: 431, 0x18d0: 432,
	0x18c8: 433, 0x18c4: 434, 0x18c2: 435, 0x18c1: 436, 0x18b0: 437, 0x18a8: 438,
	0x18a4: 439, 0x18a2: 440, 0x18a1: 441, 0x1898: 442, 0x1894: 443, 0x1892: 444,
	0x1891: 445, 0x188c: 446, 0x188a: 447, 0x1889: 448, 0x1886: 449, 0x1885: 450,
	0x1883: 451, 0x1870: 452, 0x1868: 453, 0x1864: 454, 0x1862: 455, 0x1861: 456,
	0x1858: 457, 0x1854: 458, 0x1852: 459, 0x1851: 460, 0x184c: 461, 0x184a: 462,
	0x1849: 463, 0x1846: 464, 0x1845: 465, 0x1843: 466, 0x1838: 467, 0x1834: 468,
	0x1832: 469, 0x1831: 470, 0x182c: 471, 0x182a: 472, 0x1829: 473, 0x1826: 474,
	0x1825: 475, 0x1823: 476, 0x181c: 477, 0x181a: 478, 0x1819: 479, 0x1816: 480,
	0x1815: 481, 0x1813: 482, 0x180e: 483, 0x180d: 484, 0x180b: 485, 0x1807: 486,
	0x1780: 487, 0x1740: 488, 0x1720: 489, 0x1710: 490, 0x1708: 491, 0x1704: 492,
	0x1702: 493, 0x1701: 494, 0x16c0: 495, 0x16a0: 496, 0x1690: 497, 0x1688: 498,
	0x1684: 499, 0x1682: 500, 0x1681: 501, 0x1660: 502, 0x1650: 503, 0x1648: 504,
	0x1644: 505, 0x1642: 506, 0x1641: 507, 0x1630: 508, 0x1628: 509, 0x1624: 510,
	0x1622: 511, 0x1621: 512, 0x1618: 513, 0x1614: 514, 0x1612: 515, 0x1611: 516,
	0x160c: 517, 0x160a: 518, 0x1609: 519, 0x1606: 520, 0x1605: 521, 0x1603: 522,
	0x15c0: 523, 0x15a0: 524, 0x1590: 525, 0x1588: 526, 0x1584: 527, 0x1582: 528,
	0x1581: 529, 0x1560: 530, 0x1550: 531, 0x1548: 532, 0x1544: 533, 0x1542: 534,
	0x1541: 535, 0x1530: 536, 0x1528: 537, 0x1524: 538, 0x1522: 539, 0x1521: 540,
	0x1518: 541, 0x1514: 542, 0x1512: 543, 0x1511: 544, 0x150c: 545, 0x150a: 546,
	0x1509: 547, 0x1506: 548, 0x1505: 549, 0x1503: 550, 0x14e0: 551, 0x14d0: 552,
	0x14c8: 553, 0x14c4: 554, 0x14c2: 555, 0x14c1: 556, 0x14b0: 557, 0x14a8: 558,
	0x14a4: 559, 0x14a2: 560, 0x14a1: 561, 0x1498: 562, 0x1494: 563, 0x1492: 564,
	0x1491: 565, 0x148c: 566, 0x148a: 567, 0x1489: 568, 0x1486: 569, 0x1485: 570,
	0x1483: 571, 0x1470: 572, 0x1468: 573, 0x1464: 574, 0x1462: 575, 0x1461: 576,
	0x1458: 577, 0x1454: 578, 0x1452: 579, 0x1451: 580, 0x144c: 581, 0x144a: 582,
	0x1449: 583, 0x1446: 584, 0x1445: 585, 0x1443: 586, 0x1438: 587, 0x1434: 588,
	0x1432: 589, 0x1431: 590, 0x142c: 591, 0x142a: 592, 0x1429: 593, 0x1426: 594,
	0x1425: 595, 0x1423: 596, 0x141c: 597, 0x141a: 598, 0x1419: 599, 0x1416: 600,
	0x1415: 601, 0x1413: 602, 0x140e: 603, 0x140d: 604, 0x140b: 605, 0x1407: 606,
	0x13c0: 607, 0x13a0: 608, 0x1390: 609, 0x1388: 610, 0x1384: 611, 0x1382: 612,
	0x1381: 613, 0x1360: 614, 0x1350: 615, 0x1348: 616, 0x1344: 617, 0x1342: 618,
	0x1341: 619, 0x1330: 620, 0x1328: 621, 0x1324: 622, 0x1322: 623, 0x1321: 624,
	0x1318: 625, 0x1314: 626, 0x1312: 627, 0x1311: 628, 0x130c: 629, 0x130a: 630,
	0x1309: 631, 0x1306: 632, 0x1305: 633, 0x1303: 634, 0x12e0: 635, 0x12d0: 636,
	0x12c8: 637, 0x12c4: 638, 0x12c2: 639, 0x12c1: 640, 0x12b0: 641, 0x12a8: 642,
	0x12a4: 643, 0x12a2: 644, 0x12a1: 645, 0x1298: 646, 0x1294: 647, 0x1292: 648,
	0x1291: 649, 0x128c: 650, 0x128a: 651, 0x1289: 652, 0x1286: 653, 0x1285: 654,
	0x1283: 655, 0x1270: 656, 0x1268: 657, 0x1264: 658, 0x1262: 659, 0x1261: 660,
	0x1258: 661, 0x1254: 662, 0x1252: 663, 0x1251: 664, 0x124c: 665, 0x124a: 666,
	0x1249: 667, 0x1246: 668, 0x1245: 669, 0x1243: 670, 0x1238: 671, 0x1234: 672,
	0x1232: 673, 0x1231: 674, 0x122c: 675, 0x122a: 676, 0x1229: 677, 0x1226: 678,
	0x1225: 679, 0x1223: 680, 0x121c: 681, 0x121a: 682, 0x1219: 683, 0x1216: 684,
	0x1215: 685, 0x1213: 686, 0x120e: 687, 0x120d: 688, 0x120b: 689, 0x1207: 690,
	0x11e0: 691, 0x11d0: 692, 0x11c8: 693, 0x11c4: 694, 0x11c2: 695, 0x11c1: 696,
	0x11b0: 697, 0x11a8: 698, 0x11a4: 699, 0x11a2: 700, 0x11a1: 701, 0x1198: 702,
	0x1194: 703, 0x1192: 704, 0x1191: 705, 0x118c: 706, 0x118a: 707, 0x1189: 708,
	0x1186: 709, 0x1185: 710, 0x1183: 711, 0x1170: 712, 0x1168: 713, 0x1164: 714,
	0x1162: 715, 0x1161: 716, 0x1158: 717, 0x1154: 718, 0x1152: 719, 0x1151: 720,
	0x114c: 721, 0x114a: 722, 0x1149: 723, 0x1146: 724, 0x1145: 725, 0x1143: 726,
	0x1138: 727, 0x1134: 728, 0x1132: 729, 0x1131: 730, 0x112c: 731, 0x112a: 732,
	0x1129: 733, 0x1126: 734, 0x1125: 735, 0x1123: 736, 0x111c: 737, 0x111a: 738,
	0x1119: 739, 0x1116: 740, 0x1115: 741, 0x1113: 742, 0x110e: 743, 0x110d: 744,
	0x110b: 745, 0x1107: 746, 0x10f0: 747, 0x10e8: 748, 0x10e4: 749, 0x10e2: 750,
	0x10e1: 751, 0x10d8: 752, 0x10d4: 753, 0x10d2: 754, 0x10d1: 755, 0x10cc: 756,
	0x10ca: 757, 0x10c9: 758, 0x10c6: 759, 0x10c5: 760, 0x10c3: 761, 0x10b8: 762,
	0x10b4: 763, 0x10b2: 764, 0x10b1: 765, 0x10ac: 766, 0x10aa: 767, 0x10a9: 768,
	0x10a6: 769, 0x10a5: 770, 0x10a3: 771, 0x109c: 772, 0x109a: 773, 0x1099: 774,
	0x1096: 775, 0x1095: 776, 0x1093: 777, 0x108e: 778, 0x108d: 779, 0x108b: 780,
	0x1087: 781, 0x1078: 782, 0x1074: 783, 0x1072: 784, 0x1071: 785, 0x106c: 786,
	0x106a: 787, 0x1069: 788, 0x1066: 789, 0x1065: 790, 0x1063: 791, 0x105c: 792,
	0x105a: 793, 0x1059: 794, 0x1056: 795, 0x1055: 796, 0x1053: 797, 0x104e: 798,
	0x104d: 799, 0x104b: 800, 0x1047: 801, 0x103c: 802, 0x103a: 803, 0x1039: 804,
	0x1036: 805, 0x1035: 806, 0x1033: 807, 0x102e: 808, 0x102d: 809, 0x102b: 810,
	0x1027: 811, 0x101e: 812, 0x101d: 813, 0x101b: 814, 0x1017: 815, 0x0f40: 816,
	0x0f20: 817, 0x0f10: 818, 0x0f08: 819, 0x0f04: 820, 0x0f02: 821, 0x0f01: 822,
	0x0ec0: 823, 0x0ea0: 824, 0x0e90: 825, 0x0e88: 826, 0x0e84: 827, 0x0e82: 828,
	0x0e81: 829, 0x0e60: 830, 0x0e50: 831, 0x0e48: 832, 0x0e44: 833, 0x0e42: 834,
	0x0e41: 835, 0x0e30: 836, 0x0e28: 837, 0x0e24: 838, 0x0e22: 839, 0x0e21: 840,
	0x0e18: 841, 0x0e14: 842, 0x0e12: 843, 0x0e11: 844, 0x0e0c: 845, 0x0e0a: 846,
	0x0e09: 847, 0x0e06: 848, 0x0e05: 849, 0x0e03: 850, 0x0dc0: 851, 0x0da0: 852,
	0x0d90: 853, 0x0d88: 854, 0x0d84: 855, 0x0d82: 856, 0x0d81: 857, 0x0d60: 858,
	0x0d50: 859, 0x0d48: 860, 0x0d44: 861, 0x0d42: 862, 0x0d41: 863, 0x0d30: 864,
	0x0d28: 865, 0x0d24: 866, 0x0d22: 867, 0x0d21: 868, 0x0d18: 869, 0x0d14: 870,
	0x0d12: 871, 0x0d11: 872, 0x0d0c: 873, 0x0d0a: 874, 0x0d09: 875, 0x0d06: 876,
	0x0d05: 877, 0x0d03: 878, 0x0ce0: 879, 0x0cd0: 880, 0x0cc8: 881, 0x0cc4: 882,
	0x0cc2: 883, 0x0cc1: 884, 0x0cb0: 885, 0x0ca8: 886, 0x0ca4: 887, 0x0ca2: 888,
	0x0ca1: 889, 0x0c98: 890, 0x0c94: 891, 0x0c92: 892, 0x0c91: 893, 0x0c8c: 894,
	0x0c8a: 895, 0x0c89: 896, 0x0c86: 897, 0x0c85: 898, 0x0c83: 899, 0x0c70: 900,
	0x0c68: 901, 0x0c64: 902, 0x0c62: 903, 0x0c61: 904, 0x0c58: 905, 0x0c54: 906,
	0x0c52: 907, 0x0c51: 908, 0x0c4c: 909, 0x0c4a: 910, 0x0c49: 911, 0x0c46: 912,
	0x0c45: 913, 0x0c43: 914, 0x0c38: 915, 0x0c34: 916, 0x0c32: 917, 0x0c31: 918,
	0x0c2c: 919, 0x0c2a: 920, 0x0c29: 921, 0x0c26: 922, 0x0c25: 923, 0x0c23: 924,
	0x0c1c: 925, 0x0c1a: 926, 0x0c19: 927, 0x0c16: 928, 0x0c15: 929, 0x0c13: 930,
	0x0c0e: 931, 0x0c0d: 932, 0x0c0b: 933, 0x0c07: 934, 0x0bc0: 935, 0x0ba0: 936,
	0x0b90: 937, 0x0b88: 938, 0x0b84: 939, 0x0b82: 940, 0x0b81: 941, 0x0b60: 942,
	0x0b50: 943, 0x0b48: 944, 0x0b44: 945, 0x0b42: 946, 0x0b41: 947, 0x0b30: 948,
	0x0b28: 949, 0x0b24: 950, 0x0b22: 951, 0x0b21: 952, 0x0b18: 953, 0x0b14: 954,
	0x0b12: 955, 0x0b11: 956, 0x0b0c: 957, 0x0b0a: 958, 0x0b09: 959, 0x0b06: 960,
	0x0b05: 961, 0x0b03: 962, 0x0ae0: 963, 0x0ad0: 964, 0x0ac8: 965, 0x0ac4: 966,
	0x0ac2: 967, 0x0ac1: 968, 0x0ab0: 969, 0x0aa8: 970, 0x0aa4: 971, 0x0aa2: 972,
	0x0aa1: 973, 0x0a98: 974, 0x0a94: 975, 0x0a92: 976, 0x0a91: 977, 0x0a8c: 978,
	0x0a8a: 979, 0x0a89: 980, 0x0a86: 981, 0x0a85: 982, 0x0a83: 983, 0x0a70: 984,
	0x0a68: 985, 0x0a64: 986, 0x0a62: 987, 0x0a61: 988, 0x0a58: 989, 0x0a54: 990,
	0x0a52: 991, 0x0a51: 992, 0x0a4c: 993, 0x0a4a: 994, 0x0a49: 995, 0x0a46: 996,
	0x0a45: 997, 0x0a43: 998, 0x0a38: 999, 0x0a34: 1000, 0x0a32: 1001, 0x0a31: 1002,
	0x0a2c: 1003, 0x0a2a: 1004, 0x0a29: 1005, 0x0a26: 1006, 0x0a25: 1007, 0x0a23: 1008,
	0x0a1c: 1009, 0x0a1a: 1010, 0x0a19: 1011, 0x0a16: 1012, 0x0a15: 1013, 0x0a13: 1014,
	0x0a0e: 1015, 0x0a0d: 1016, 0x0a0b: 1017, 0x0a07: 1018, 0x09e0: 1019, 0x09d0: 1020,
	0x09c8: 1021, 0x09c4: 1022, 0x09c2: 1023, 0x09c1: 1024, 0x09b0: 1025, 0x09a8: 1026,
	0x09a4: 1027, 0x09a2: 1028, 0x09a1: 1029, 0x0998: 1030, 0x0994: 1031, 0x0992: 1032,
	0x0991: 1033, 0x098c: 1034, 0x098a: 1035, 0x0989: 1036, 0x0986: 1037, 0x0985: 1038,
	0x0983: 1039, 0x0970: 1040, 0x0968: 1041, 0x0964: 1042, 0x0962: 1043, 0x0961: 1044,
	0x0958: 1045, 0x0954: 1046, 0x0952: 1047, 0x0951: 1048, 0x094c: 1049, 0x094a: 1050,
	0x0949: 1051, 0x0946: 1052, 0x0945: 1053, 0x0943: 1054, 0x0938: 1055, 0x0934: 1056,
	0x0932: 1057, 0x0931: 1058, 0x092c: 1059, 0x092a: 1060, 0x0929: 1061, 0x0926: 1062,
	0x0925: 1063, 0x0923: 1064, 0x091c: 1065, 0x091a: 1066, 0x0919: 1067, 0x0916: 1068,
	0x0915: 1069, 0x0913: 1070, 0x090e: 1071, 0x090d: 1072, 0x090b: 1073, 0x0907: 1074,
	0x08f0: 1075, 0x08e8: 1076, 0x08e4: 1077, 0x08e2: 1078, 0x08e1: 1079, 0x08d8: 1080,
	0x08d4: 1081, 0x08d2: 1082, 0x08d1: 1083, 0x08cc: 1084, 0x08ca: 1085, 0x08c9: 1086,
	0x08c6: 1087, 0x08c5: 1088, 0x08c3: 1089, 0x08b8: 1090, 0x08b4: 1091, 0x08b2: 1092,
	0x08b1: 1093, 0x08ac: 1094, 0x08aa: 1095, 0x08a9: 1096, 0x08a6: 1097, 0x08a5: 1098,
	0x08a3: 1099, 0x089c: 1100, 0x089a: 1101, 0x0899: 1102, 0x0896: 1103, 0x0895: 1104,
	0x0893: 1105, 0x088e: 1106, 0x088d: 1107, 0x088b: 1108, 0x0887: 1109, 0x0878: 1110,
	0x0874: 1111, 0x0872: 1112, 0x0871: 1113, 0x086c: 1114, 0x086a: 1115, 0x0869: 1116,
	0x0866: 1117, 0x0865: 1118, 0x0863: 1119, 0x085c: 1120, 0x085a: 1121, 0x0859: 1122,
	0x0856: 1123, 0x0855: 1124, 0x0853: 1125, 0x084e: 1126, 0x084d: 1127, 0x084b: 1128,
	0x0847: 1129, 0x083c: 1130, 0x083a: 1131, 0x0839: 1132, 0x0836: 1133, 0x0835: 1134,
	0x0833: 1135, 0x082e: 1136, 0x082d: 1137, 0x082b: 1138, 0x0827: 1139, 0x081e: 1140,
	0x081d: 1141, 0x081b: 1142, 0x0817: 1143, 0x080f: 1144, 0x07a0: 1145, 0x0790: 1146,
	0x0788: 1147, 0x0784: 1148, 0x0782: 1149, 0x0781: 1150, 0x0760: 1151, 0x0750: 1152,
	0x0748: 1153, 0x0744: 1154, 0x0742: 1155, 0x0741: 1156, 0x0730: 1157, 0x0728: 1158,
	0x0724: 1159, 0x0722: 1160, 0x0721: 1161, 0x0718: 1162, 0x0714: 1163, 0x0712: 1164,
	0x0711: 1165, 0x070c: 1166, 0x070a: 1167, 0x0709: 1168, 0x0706: 1169, 0x0705: 1170,
	0x0703: 1171, 0x06e0: 1172, 0x06d0: 1173, 0x06c8: 1174, 0x06c4: 1175, 0x06c2: 1176,
	0x06c1: 1177, 0x06b0: 1178, 0x06a8: 1179, 0x06a4: 1180, 0x06a2: 1181, 0x06a1: 1182,
	0x0698: 1183, 0x0694: 1184, 0x0692: 1185, 0x0691: 1186, 0x068c: 1187, 0x068a: 1188,
	0x0689: 1189, 0x0686: 1190, 0x0685: 1191, 0x0683: 1192, 0x0670: 1193, 0x0668: 1194,
	0x0664: 1195, 0x0662: 1196, 0x0661: 1197, 0x0658: 1198, 0x0654: 1199, 0x0652: 1200,
	0x0651: 1201, 0x064c: 1202, 0x064a: 1203, 0x0649: 1204, 0x0646: 1205, 0x0645: 1206,
	0x0643: 1207, 0x0638: 1208, 0x0634: 1209, 0x0632: 1210, 0x0631: 1211, 0x062c: 1212,
	0x062a: 1213, 0x0629: 1214, 0x0626: 1215, 0x0625: 1216, 0x0623: 1217, 0x061c: 1218,
	0x061a: 1219, 0x0619: 1220, 0x0616: 1221, 0x0615: 1222, 0x0613: 1223, 0x060e: 1224,
	0x060d: 1225, 0x060b: 1226, 0x0607: 1227, 0x05e0: 1228, 0x05d0: 1229, 0x05c8: 1230,
	0x05c4: 1231, 0x05c2: 1232, 0x05c1: 1233, 0x05b0: 1234, 0x05a8: 1235, 0x05a4: 1236,
	0x05a2: 1237, 0x05a1: 1238, 0x0598: 1239, 0x0594: 1240, 0x0592: 1241, 0x0591: 1242,
	0x058c: 1243, 0x058a: 1244, 0x0589: 1245, 0x0586: 1246, 0x0585: 1247, 0x0583: 1248,
	0x0570: 1249, 0x0568: 1250, 0x0564: 1251, 0x0562: 1252, 0x0561: 1253, 0x0558: 1254,
	0x0554: 1255, 0x0552: 1256, 0x0551: 1257, 0x054c: 1258, 0x054a: 1259, 0x0549: 1260,
	0x0546: 1261, 0x0545: 1262, 0x0543: 1263, 0x0538: 1264, 0x0534: 1265, 0x0532: 1266,
	0x0531: 1267, 0x052c: 1268, 0x052a: 1269, 0x0529: 1270, 0x0526: 1271, 0x0525: 1272,
	0x0523: 1273, 0x051c: 1274, 0x051a: 1275, 0x0519: 1276, 0x0516: 1277, 0x0515: 1278,
	0x0513: 1279, 0x050e: 1280, 0x050d: 1281, 0x050b: 1282, 0x0507: 1283, 0x04f0: 1284,
	0x04e8: 1285, 0x04e4: 1286, 0x04e2: 1287, 0x04e1: 1288, 0x04d8: 1289, 0x04d4: 1290,
	0x04d2: 1291, 0x04d1: 1292, 0x04cc: 1293, 0x04ca: 1294, 0x04c9: 1295, 0x04c6: 1296,
	0x04c5: 1297, 0x04c3: 1298, 0x04b8: 1299, 0x04b4: 1300, 0x04b2: 1301, 0x04b1: 1302,
	0x04ac: 1303, 0x04aa: 1304, 0x04a9: 1305, 0x04a6: 1306, 0x04a5: 1307, 0x04a3: 1308,
	0x049c: 1309, 0x049a: 1310, 0x0499: 1311, 0x0496: 1312, 0x0495: 1313, 0x0493: 1314,
	0x048e: 1315, 0x048d: 1316, 0x048b: 1317, 0x0487: 1318, 0x0478: 1319, 0x0474: 1320,
	0x0472: 1321, 0x0471: 1322, 0x046c: 1323, 0x046a: 1324, 0x0469: 1325, 0x0466: 1326,
	0x0465: 1327, 0x0463: 1328, 0x045c: 1329, 0x045a: 1330, 0x0459: 1331, 0x0456: 1332,
	0x0455: 1333, 0x0453: 1334, 0x044e: 1335, 0x044d: 1336, 0x044b: 1337, 0x0447: 1338,
	0x043c: 1339, 0x043a: 1340, 0x0439: 1341, 0x0436: 1342, 0x0435: 1343, 0x0433: 1344,
	0x042e: 1345, 0x042d: 1346, 0x042b: 1347, 0x0427: 1348, 0x041e: 1349, 0x041d: 1350,
	0x041b: 1351, 0x0417: 1352, 0x040f: 1353, 0x03d0: 1354, 0x03c8: 1355, 0x03c4: 1356,
	0x03c2: 1357, 0x03c1: 1358, 0x03b0: 1359, 0x03a8: 1360, 0x03a4: 1361, 0x03a2: 1362,
	0x03a1: 1363, 0x0398: 1364, 0x0394: 1365, 0x0392: 1366, 0x0391: 1367, 0x038c: 1368,
	0x038a: 1369, 0x0389: 1370, 0x0386: 1371, 0x0385: 1372, 0x0383: 1373, 0x0370: 1374,
	0x0368: 1375, 0x0364: 1376, 0x0362: 1377, 0x0361: 1378, 0x0358: 1379, 0x0354: 1380,
	0x0352: 1381, 0x0351: 1382, 0x034c: 1383, 0x034a: 1384, 0x0349: 1385, 0x0346: 1386,
	0x0345: 1387, 0x0343: 1388, 0x0338: 1389, 0x0334: 1390, 0x0332: 1391, 0x0331: 1392,
	0x032c: 1393, 0x032a: 1394, 0x0329: 1395, 0x0326: 1396, 0x0325: 1397, 0x0323: 1398,
	0x031c: 1399, 0x031a: 1400, 0x0319: 1401, 0x0316: 1402, 0x0315: 1403, 0x0313: 1404,
	0x030e: 1405, 0x030d: 1406, 0x030b: 1407, 0x0307: 1408, 0x02f0: 1409, 0x02e8: 1410,
	0x02e4: 1411, 0x02e2: 1412, 0x02e1: 1413, 0x02d8: 1414, 0x02d4: 1415, 0x02d2: 1416,
	0x02d1: 1417, 0x02cc: 1418, 0x02ca: 1419, 0x02c9: 1420, 0x02c6: 1421, 0x02c5: 1422,
	0x02c3: 1423, 0x02b8: 1424, 0x02b4: 1425, 0x02b2: 1426, 0x02b1: 1427, 0x02ac: 1428,
	0x02aa: 1429, 0x02a9: 1430, 0x02a6: 1431, 0x02a5: 1432, 0x02a3: 1433, 0x029c: 1434,
	0x029a: 1435, 0x0299: 1436, 0x0296: 1437, 0x0295: 1438, 0x0293: 1439, 0x028e: 1440,
	0x028d: 1441, 0x028b: 1442, 0x0287: 1443, 0x0278: 1444, 0x0274: 1445, 0x0272: 1446,
	0x0271: 1447, 0x026c: 1448, 0x026a: 1449, 0x0269: 1450, 0x0266: 1451, 0x0265: 1452,
	0x0263: 1453, 0x025c: 1454, 0x025a: 1455, 0x0259: 1456, 0x0256: 1457, 0x0255: 1458,
	0x0253: 1459, 0x024e: 1460, 0x024d: 1461, 0x024b: 1462, 0x0247: 1463, 0x023c: 1464,
	0x023a: 1465, 0x0239: 1466, 0x0236: 1467, 0x0235: 1468, 0x0233: 1469, 0x022e: 1470,
	0x022d: 1471, 0x022b: 1472, 0x0227: 1473, 0x021e: 1474, 0x021d: 1475, 0x021b: 1476,
	0x0217: 1477, 0x020f: 1478, 0x01e8: 1479, 0x01e4: 1480, 0x01e2: 1481, 0x01e1: 1482,
	0x01d8: 1483, 0x01d4: 1484, 0x01d2: 1485, 0x01d1: 1486, 0x01cc: 1487, 0x01ca: 1488,
	0x01c9: 1489, 0x01c6: 1490, 0x01c5: 1491, 0x01c3: 1492, 0x01b8: 1493, 0x01b4: 1494,
	0x01b2: 1495, 0x01b1: 1496, 0x01ac: 1497, 0x01aa: 1498, 0x01a9: 1499, 0x01a6: 1500,
	0x01a5: 1501, 0x01a3: 1502, 0x019c: 1503, 0x019a: 1504, 0x0199: 1505, 0x0196: 1506,
	0x0195: 1507, 0x0193: 1508, 0x018e: 1509, 0x018d: 1510, 0x018b: 1511, 0x0187: 1512,
	0x0178: 1513, 0x0174: 1514, 0x0172: 1515, 0x0171: 1516, 0x016c: 1517, 0x016a: 1518,
	0x0169: 1519, 0x0166: 1520, 0x0165: 1521, 0x0163: 1522, 0x015c: 1523, 0x015a: 1524,
	0x0159: 1525, 0x0156: 1526, 0x0155: 1527, 0x0153: 1528, 0x014e: 1529, 0x014d: 1530,
	0x014b: 1531, 0x0147: 1532, 0x013c: 1533, 0x013a: 1534, 0x0139: 1535, 0x0136: 1536,
	0x0135: 1537, 0x0133: 1538, 0x012e: 1539, 0x012d: 1540, 0x012b: 1541, 0x0127: 1542,
	0x011e: 1543, 0x011d: 1544, 0x011b: 1545, 0x0117: 1546, 0x010f: 1547, 0x00f4: 1548,
	0x00f2: 1549, 0x00f1: 1550, 0x00ec: 1551, 0x00ea: 1552, 0x00e9: 1553, 0x00e6: 1554,
	0x00e5: 1555, 0x00e3: 1556, 0x00dc: 1557, 0x00da: 1558, 0x00d9: 1559, 0x00d6: 1560,
	0x00d5: 1561, 0x00d3: 1562, 0x00ce: 1563, 0x00cd: 1564, 0x00cb: 1565, 0x00c7: 1566,
	0x00bc: 1567, 0x00ba: 1568, 0x00b9: 1569, 0x00b6: 1570, 0x00b5: 1571, 0x00b3: 1572,
	0x00ae: 1573, 0x00ad: 1574, 0x00ab: 1575, 0x00a7: 1576, 0x009e: 1577, 0x009d: 1578,
	0x009b: 1579, 0x0097: 1580, 0x008f: 1581, 0x007a: 1582, 0x0079: 1583, 0x0076: 1584,
	0x0075: 1585, 0x0073: 1586, 0x006e: 1587, 0x006d: 1588, 0x006b: 1589, 0x0067: 1590,
	0x005e: 1591, 0x005d: 1592, 0x005b: 1593, 0x0057: 1594, 0x004f: 1595, 0x003d: 1596,
	0x003b: 1597, 0x0037: 1598, 0x002f: 1599,
}

// unique5 maps the 13-bit rank union of five distinct, unsuited ranks to its
// raw score. Straights occupy 1600-1609 and high cards 6186-7462.
var unique5 = map[uint32]uint16{
	0x1f00: 1600, 0x0f80: 1601, 0x07c0: 1602, 0x03e0: 1603, 0x01f0: 1604, 0x00f8: 1605,
	0x007c: 1606, 0x003e: 1607, 0x001f: 1608, 0x100f: 1609, 0x1e80: 6186, 0x1e40: 6187,
	0x1e20: 6188, 0x1e10: 6189, 0x1e08: 6190, 0x1e04: 6191, 0x1e02: 6192, 0x1e01: 6193,
	0x1d80: 6194, 0x1d40: 6195, 0x1d20: 6196, 0x1d10: 6197, 0x1d08: 6198, 0x1d04: 6199,
	0x1d02: 6200, 0x1d01: 6201, 0x1cc0: 6202, 0x1ca0: 6203, 0x1c90: 6204, 0x1c88: 6205,
	0x1c84: 6206, 0x1c82: 6207, 0x1c81: 6208, 0x1c60: 6209, 0x1c50: 6210, 0x1c48: 6211,
	0x1c44: 6212, 0x1c42: 6213, 0x1c41: 6214, 0x1c30: 6215, 0x1c28: 6216, 0x1c24: 6217,
	0x1c22: 6218, 0x1c21: 6219, 0x1c18: 6220, 0x1c14: 6221, 0x1c12: 6222, 0x1c11: 6223,
	0x1c0c: 6224, 0x1c0a: 6225, 0x1c09: 6226, 0x1c06: 6227, 0x1c05: 6228, 0x1c03: 6229,
	0x1b80: 6230, 0x1b40: 6231, 0x1b20: 6232, 0x1b10: 6233, 0x1b08: 6234, 0x1b04: 6235,
	0x1b02: 6236, 0x1b01: 6237, 0x1ac0: 6238, 0x1aa0: 6239, 0x1a90: 6240, 0x1a88: 6241,
	0x1a84: 6242, 0x1a82: 6243, 0x1a81: 6244, 0x1a60: 6245, 0x1a50: 6246, 0x1a48: 6247,
	0x1a44: 6248, 0x1a42: 6249, 0x1a41: 6250, 0x1a30: 6251, 0x1a28: 6252, 0x1a24: 6253,
	0x1a22: 6254, 0x1a21: 6255, 0x1a18: 6256, 0x1a14: 6257, 0x1a12: 6258, 0x1a11: 6259,
	0x1a0c: 6260, 0x1a0a: 6261, 0x1a09: 6262, 0x1a06: 6263, 0x1a05: 6264, 0x1a03: 6265,
	0x19c0: 6266, 0x19a0: 6267, 0x1990: 6268, 0x1988: 6269, 0x1984: 6270, 0x1982: 6271,
	0x1981: 6272, 0x1960: 6273, 0x1950: 6274, 0x1948: 6275, 0x1944: 6276, 0x1942: 6277,
	0x1941: 6278, 0x1930: 6279, 0x1928: 6280, 0x1924: 6281, 0x1922: 6282, 0x1921: 6283,
	0x1918: 6284, 0x1914: 6285, 0x1912: 6286, 0x1911: 6287, 0x190c: 6288, 0x190a: 6289,
	0x1909: 6290, 0x1906: 6291, 0x1905: 6292, 0x1903: 6293, 0x18e0: 6294, 0x18d0: 6295,
	0x18c8: 6296, 0x18c4: 6297, 0x18c2: 6298, 0x18c1: 6299, 0x18b0: 6300, 0x18a8: 6301,
	0x18a4: 6302, 0x18a2: 6303, 0x18a1: 6304, 0x1898: 6305, 0x1894: 6306, 0x1892: 6307,
	0x1891: 6308, 0x188c: 6309, 0x188a: 6310, 0x1889: 6311, 0x1886: 6312, 0x1885: 6313,
	0x1883: 6314, 0x1870: 6315, 0x1868: 6316, 0x1864: 6317, 0x1862: 6318, 0x1861: 6319,
	0x1858: 6320, 0x1854: 6321, 0x1852: 6322, 0x1851: 6323, 0x184c: 6324, 0x184a: 6325,
	0x1849: 6326, 0x1846: 6327, 0x1845: 6328, 0x1843: 6329, 0x1838: 6330, 0x1834: 6331,
	0x1832: 6332, 0x1831: 6333, 0x182c: 6334, 0x182a: 6335, 0x1829: 6336, 0x1826: 6337,
	0x1825: 6338, 0x1823: 6339, 0x181c: 6340, 0x181a: 6341, 0x1819: 6342, 0x1816: 6343,
	0x1815: 6344, 0x1813: 6345, 0x180e: 6346, 0x180d: 6347, 0x180b: 6348, 0x1807: 6349,
	0x1780: 6350, 0x1740: 6351, 0x1720: 6352, 0x1710: 6353, 0x1708: 6354, 0x1704: 6355,
	0x1702: 6356, 0x1701: 6357, 0x16c0: 6358, 0x16a0: 6359, 0x1690: 6360, 0x1688: 6361,
	0x1684: 6362, 0x1682: 6363, 0x1681: 6364, 0x1660: 6365, 0x1650: 6366, 0x1648: 6367,
	0x1644: 6368, 0x1642: 6369, 0x1641: 6370, 0x1630: 6371, 0x1628: 6372, 0x1624: 6373,
	0x1622: 6374, 0x1621: 6375, 0x1618: 6376, 0x1614: 6377, 0x1612: 6378, 0x1611: 6379,
	0x160c: 6380, 0x160a: 6381, 0x1609: 6382, 0x1606: 6383, 0x1605: 6384, 0x1603: 6385,
	0x15c0: 6386, 0x15a0: 6387, 0x1590: 6388, 0x1588: 6389, 0x1584: 6390, 0x1582: 6391,
	0x1581: 6392, 0x1560: 6393, 0x1550: 6394, 0x1548: 6395, 0x1544: 6396, 0x1542: 6397,
	0x1541: 6398, 0x1530: 6399, 0x1528: 6400, 0x1524: 6401, 0x1522: 6402, 0x1521: 6403,
	0x1518: 6404, 0x1514: 6405, 0x1512: 6406, 0x1511: 6407, 0x150c: 6408, 0x150a: 6409,
	0x1509: 6410, 0x1506: 6411, 0x1505: 6412, 0x1503: 6413, 0x14e0: 6414, 0x14d0: 6415,
	0x14c8: 6416, 0x14c4: 6417, 0x14c2: 6418, 0x14c1: 6419, 0x14b0: 6420, 0x14a8: 6421,
	0x14a4: 6422, 0x14a2: 6423, 0x14a1: 6424, 0x1498: 6425, 0x1494: 6426, 0x1492: 6427,
	0x1491: 6428, 0x148c: 6429, 0x148a: 6430, 0x1489: 6431, 0x1486: 6432, 0x1485: 6433,
	0x1483: 6434, 0x1470: 6435, 0x1468: 6436, 0x1464: 6437, 0x1462: 6438, 0x1461: 6439,
	0x1458: 6440, 0x1454: 6441, 0x1452: 6442, 0x1451: 6443, 0x144c: 6444, 0x144a: 6445,
	0x1449: 6446, 0x1446: 6447, 0x1445: 6448, 0x1443: 6449, 0x1438: 6450, 0x1434: 6451,
	0x1432: 6452, 0x1431: 6453, 0x142c: 6454, 0x142a: 6455, 0x1429: 6456, 0x1426: 6457,
	0x1425: 6458, 0x1423: 6459, 0x141c: 6460, 0x141a: 6461, 0x1419: 6462, 0x1416: 6463,
	0x1415: 6464, 0x1413: 6465, 0x140e: 6466, 0x140d: 6467, 0x140b: 6468, 0x1407: 6469,
	0x13c0: 6470, 0x13a0: 6471, 0x1390: 6472, 0x1388: 6473, 0x1384: 6474, 0x1382: 6475,
	0x1381: 6476, 0x1360: 6477, 0x1350: 6478, 0x1348: 6479, 0x1344: 6480, 0x1342: 6481,
	0x1341: 6482, 0x1330: 6483, 0x1328: 6484, 0x1324: 6485, 0x1322: 6486, 0x1321: 6487,
	0x1318: 6488, 0x1314: 6489, 0x1312: 6490, 0x1311: 6491, 0x130c: 6492, 0x130a: 6493,
	0x1309: 6494, 0x1306: 6495, 0x1305: 6496, 0x1303: 6497, 0x12e0: 6498, 0x12d0: 6499,
	0x12c8: 6500, 0x12c4: 6501, 0x12c2: 6502, 0x12c1: 6503, 0x12b0: 6504, 0x12a8: 6505,
	0x12a4: 6506, 0x12a2: 6507, 0x12a1: 6508, 0x1298: 6509, 0x1294: 6510, 0x1292: 6511,
	0x1291: 6512, 0x128c: 6513, 0x128a: 6514, 0x1289: 6515, 0x1286: 6516, 0x1285: 6517,
	0x1283: 6518, 0x1270: 6519, 0x1268: 6520, 0x1264: 6521, 0x1262: 6522, 0x1261: 6523,
	0x1258: 6524, 0x1254: 6525, 0x1252: 6526, 0x1251: 6527, 0x124c: 6528, 0x124a: 6529,
	0x1249: 6530, 0x1246: 6531, 0x1245: 6532, 0x1243: 6533, 0x1238: 6534, 0x1234: 6535,
	0x1232: 6536, 0x1231: 6537, 0x122c: 6538, 0x122a: 6539, 0x1229: 6540, 0x1226: 6541,
	0x1225: 6542, 0x1223: 6543, 0x121c: 6544, 0x121a: 6545, 0x1219: 6546, 0x1216: 6547,
	0x1215: 6548, 0x1213: 6549, 0x120e: 6550, 0x120d: 6551, 0x120b: 6552, 0x1207: 6553,
	0x11e0: 6554, 0x11d0: 6555, 0x11c8: 6556, 0x11c4: 6557, 0x11c2: 6558, 0x11c1: 6559,
	0x11b0: 6560, 0x11a8: 6561, 0x11a4: 6562, 0x11a2: 6563, 0x11a1: 6564, 0x1198: 6565,
	0x1194: 6566, 0x1192: 6567, 0x1191: 6568, 0x118c: 6569, 0x118a: 6570, 0x1189: 6571,
	0x1186: 6572, 0x1185: 6573, 0x1183: 6574, 0x1170: 6575, 0x1168: 6576, 0x1164: 6577,
	0x1162: 6578, 0x1161: 6579, 0x1158: 6580, 0x1154: 6581, 0x1152: 6582, 0x1151: 6583,
	0x114c: 6584, 0x114a: 6585, 0x1149: 6586, 0x1146: 6587, 0x1145: 6588, 0x1143: 6589,
	0x1138: 6590, 0x1134: 6591, 0x1132: 6592, 0x1131: 6593, 0x112c: 6594, 0x112a: 6595,
	0x1129: 6596, 0x1126: 6597, 0x1125: 6598, 0x1123: 6599, 0x111c: 6600, 0x111a: 6601,
	0x1119: 6602, 0x1116: 6603, 0x1115: 6604, 0x1113: 6605, 0x110e: 6606, 0x110d: 6607,
	0x110b: 6608, 0x1107: 6609, 0x10f0: 6610, 0x10e8: 6611, 0x10e4: 6612, 0x10e2: 6613,
	0x10e1: 6614, 0x10d8: 6615, 0x10d4: 6616, 0x10d2: 6617, 0x10d1: 6618, 0x10cc: 6619,
	0x10ca: 6620, 0x10c9: 6621, 0x10c6: 6622, 0x10c5: 6623, 0x10c3: 6624, 0x10b8: 6625,
	0x10b4: 6626, 0x10b2: 6627, 0x10b1: 6628, 0x10ac: 6629, 0x10aa: 6630, 0x10a9: 6631,
	0x10a6: 6632, 0x10a5: 6633, 0x10a3: 6634, 0x109c: 6635, 0x109a: 6636, 0x1099: 6637,
	0x1096: 6638, 0x1095: 6639, 0x1093: 6640, 0x108e: 6641, 0x108d: 6642, 0x108b: 6643,
	0x1087: 6644, 0x1078: 6645, 0x1074: 6646, 0x1072: 6647, 0x1071: 6648, 0x106c: 6649,
	0x106a: 6650, 0x1069: 6651, 0x1066: 6652, 0x1065: 6653, 0x1063: 6654, 0x105c: 6655,
	0x105a: 6656, 0x1059: 6657, 0x1056: 6658, 0x1055: 6659, 0x1053: 6660, 0x104e: 6661,
	0x104d: 6662, 0x104b: 6663, 0x1047: 6664, 0x103c: 6665, 0x103a: 6666, 0x1039: 6667,
	0x1036: 6668, 0x1035: 6669, 0x1033: 6670, 0x102e: 6671, 0x102d: 6672, 0x102b: 6673,
	0x1027: 6674, 0x101e: 6675, 0x101d: 6676, 0x101b: 6677, 0x1017: 6678, 0x0f40: 6679,
	0x0f20: 6680, 0x0f10: 6681, 0x0f08: 6682, 0x0f04: 6683, 0x0f02: 6684, 0x0f01: 6685,
	0x0ec0: 6686, 0x0ea0: 6687, 0x0e90: 6688, 0x0e88: 6689, 0x0e84: 6690, 0x0e82: 6691,
	0x0e81: 6692, 0x0e60: 6693, 0x0e50: 6694, 0x0e48: 6695, 0x0e44: 6696, 0x0e42: 6697,
	0x0e41: 6698, 0x0e30: 6699, 0x0e28: 6700, 0x0e24: 6701, 0x0e22: 6702, 0x0e21: 6703,
	0x0e18: 6704, 0x0e14: 6705, 0x0e12: 6706, 0x0e11: 6707, 0x0e0c: 6708, 0x0e0a: 6709,
	0x0e09: 6710, 0x0e06: 6711, 0x0e05: 6712, 0x0e03: 6713, 0x0dc0: 6714, 0x0da0: 6715,
	0x0d90: 6716, 0x0d88: 6717, 0x0d84: 6718, 0x0d82: 6719, 0x0d81: 6720, 0x0d60: 6721,
	0x0d50: 6722, 0x0d48: 6723, 0x0d44: 6724, 0x0d42: 6725, 0x0d41: 6726, 0x0d30: 6727,
	0x0d28: 6728, 0x0d24: 6729, 0x0d22: 6730, 0x0d21: 6731, 0x0d18: 6732, 0x0d14: 6733,
	0x0d12: 6734, 0x0d11: 6735, 0x0d0c: 6736, 0x0d0a: 6737, 0x0d09: 6738, 0x0d06: 6739,
	0x0d05: 6740, 0x0d03: 6741, 0x0ce0: 6742, 0x0cd0: 6743, 0x0cc8: 6744, 0x0cc4: 6745,
	0x0cc2: 6746, 0x0cc1: 6747, 0x0cb0: 6748, 0x0ca8: 6749, 0x0ca4: 6750, 0x0ca2: 6751,
	0x0ca1: 6752, 0x0c98: 6753, 0x0c94: 6754, 0x0c92: 6755, 0x0c91: 6756, 0x0c8c: 6757,
	0x0c8a: 6758, 0x0c89: 6759, 0x0c86: 6760, 0x0c85: 6761, 0x0c83: 6762, 0x0c70: 6763,
	0x0c68: 6764, 0x0c64: 6765, 0x0c62: 6766, 0x0c61: 6767, 0x0c58: 6768, 0x0c54: 6769,
	0x0c52: 6770, 0x0c51: 6771, 0x0c4c: 6772, 0x0c4a: 6773, 0x0c49: 6774, 0x0c46: 6775,
	0x0c45: 6776, 0x0c43: 6777, 0x0c38: 6778, 0x0c34: 6779, 0x0c32: 6780, 0x0c31: 6781,
	0x0c2c: 6782, 0x0c2a: 6783, 0x0c29: 6784, 0x0c26: 6785, 0x0c25: 6786, 0x0c23: 6787,
	0x0c1c: 6788, 0x0c1a: 6789, 0x0c19: 6790, 0x0c16: 6791, 0x0c15: 6792, 0x0c13: 6793,
	0x0c0e: 6794, 0x0c0d: 6795, 0x0c0b: 6796, 0x0c07: 6797, 0x0bc0: 6798, 0x0ba0: 6799,
	0x0b90: 6800, 0x0b88: 6801, 0x0b84: 6802, 0x0b82: 6803, 0x0b81: 6804, 0x0b60: 6805,
	0x0b50: 6806, 0x0b48: 6807, 0x0b44: 6808, 0x0b42: 6809, 0x0b41: 6810, 0x0b30: 6811,
	0x0b28: 6812, 0x0b24: 6813, 0x0b22: 6814, 0x0b21: 6815, 0x0b18: 6816, 0x0b14: 6817,
	0x0b12: 6818, 0x0b11: 6819, 0x0b0c: 6820, 0x0b0a: 6821, 0x0b09: 6822, 0x0b06: 6823,
	0x0b05: 6824, 0x0b03: 6825, 0x0ae0: 6826, 0x0ad0: 6827, 0x0ac8: 6828, 0x0ac4: 6829,
	0x0ac2: 6830, 0x0ac1: 6831, 0x0ab0: 6832, 0x0aa8: 6833, 0x0aa4: 6834, 0x0aa2: 6835,
	0x0aa1: 6836, 0x0a98: 6837, 0x0a94: 6838, 0x0a92: 6839, 0x0a91: 6840, 0x0a8c: 6841,
	0x0a8a: 6842, 0x0a89: 6843, 0x0a86: 6844, 0x0a85: 6845, 0x0a83: 6846, 0x0a70: 6847,
	0x0a68: 6848, 0x0a64: 6849, 0x0a62: 6850, 0x0a61: 6851, 0x0a58: 6852, 0x0a54: 6853,
	0x0a52: 6854, 0x0a51: 6855, 0x0a4c: 6856, 0x0a4a: 6857, 0x0a49: 6858, 0x0a46: 6859,
	0x0a45: 6860, 0x0a43: 6861, 0x0a38: 6862, 0x0a34: 6863, 0x0a32: 6864, 0x0a31: 6865,
	0x0a2c: 6866, 0x0a2a: 6867, 0x0a29: 6868, 0x0a26: 6869, 0x0a25: 6870, 0x0a23: 6871,
	0x0a1c: 6872, 0x0a1a: 6873, 0x0a19: 6874, 0x0a16: 6875, 0x0a15: 6876, 0x0a13: 6877,
	0x0a0e: 6878, 0x0a0d: 6879, 0x0a0b: 6880, 0x0a07: 6881, 0x09e0: 6882, 0x09d0: 6883,
	0x09c8: 6884, 0x09c4: 6885, 0x09c2: 6886, 0x09c1: 6887, 0x09b0: 6888, 0x09a8: 6889,
	0x09a4: 6890, 0x09a2: 6891, 0x09a1: 6892, 0x0998: 6893, 0x0994: 6894, 0x0992: 6895,
	0x0991: 6896, 0x098c: 6897, 0x098a: 6898, 0x0989: 6899, 0x0986: 6900, 0x0985: 6901,
	0x0983: 6902, 0x0970: 6903, 0x0968: 6904, 0x0964: 6905, 0x0962: 6906, 0x0961: 6907,
	0x0958: 6908, 0x0954: 6909, 0x0952: 6910, 0x0951: 6911, 0x094c: 6912, 0x094a: 6913,
	0x0949: 6914, 0x0946: 6915, 0x0945: 6916, 0x0943: 6917, 0x0938: 6918, 0x0934: 6919,
	0x0932: 6920, 0x0931: 6921, 0x092c: 6922, 0x092a: 6923, 0x0929: 6924, 0x0926: 6925,
	0x0925: 6926, 0x0923: 6927, 0x091c: 6928, 0x091a: 6929, 0x0919: 6930, 0x0916: 6931,
	0x0915: 6932, 0x0913: 6933, 0x090e: 6934, 0x090d: 6935, 0x090b: 6936, 0x0907: 6937,
	0x08f0: 6938, 0x08e8: 6939, 0x08e4: 6940, 0x08e2: 6941, 0x08e1: 6942, 0x08d8: 6943,
	0x08d4: 6944, 0x08d2: 6945, 0x08d1: 6946, 0x08cc: 6947, 0x08ca: 6948, 0x08c9: 6949,
	0x08c6: 6950, 0x08c5: 6951, 0x08c3: 6952, 0x08b8: 6953, 0x08b4: 6954, 0x08b2: 6955,
	0x08b1: 6956, 0x08ac: 6957, 0x08aa: 6958, 0x08a9: 6959, 0x08a6: 6960, 0x08a5: 6961,
	0x08a3: 6962, 0x089c: 6963, 0x089a: 6964, 0x0899: 6965, 0x0896: 6966, 0x0895: 6967,
	0x0893: 6968, 0x088e: 6969, 0x088d: 6970, 0x088b: 6971, 0x0887: 6972, 0x0878: 6973,
	0x0874: 6974, 0x0872: 6975, 0x0871: 6976, 0x086c: 6977, 0x086a: 6978, 0x0869: 6979,
	0x0866: 6980, 0x0865: 6981, 0x0863: 6982, 0x085c: 6983, 0x085a: 6984, 0x0859: 6985,
	0x0856: 6986, 0x0855: 6987, 0x0853: 6988, 0x084e: 6989, 0x084d: 6990, 0x084b: 6991,
	0x0847: 6992, 0x083c: 6993, 0x083a: 6994, 0x0839: 6995, 0x0836: 6996, 0x0835: 6997,
	0x0833: 6998, 0x082e: 6999, 0x082d: 7000, 0x082b: 7001, 0x0827: 7002, 0x081e: 7003,
	0x081d: 7004, 0x081b: 7005, 0x0817: 7006, 0x080f: 7007, 0x07a0: 7008, 0x0790: 7009,
	0x0788: 7010, 0x0784: 7011, 0x0782: 7012, 0x0781: 7013, 0x0760: 7014, 0x0750: 7015,
	0x0748: 7016, 0x0744: 7017, 0x0742: 7018, 0x0741: 7019, 0x0730: 7020, 0x0728: 7021,
	0x0724: 7022, 0x0722: 7023, 0x0721: 7024, 0x0718: 7025, 0x0714: 7026, 0x0712: 7027,
	0x0711: 7028, 0x070c: 7029, 0x070a: 7030, 0x0709: 7031, 0x0706: 7032, 0x0705: 7033,
	0x0703: 7034, 0x06e0: 7035, 0x06d0: 7036, 0x06c8: 7037, 0x06c4: 7038, 0x06c2: 7039,
	0x06c1: 7040, 0x06b0: 7041, 0x06a8: 7042, 0x06a4: 7043, 0x06a2: 7044, 0x06a1: 7045,
	0x0698: 7046, 0x0694: 7047, 0x0692: 7048, 0x0691: 7049, 0x068c: 7050, 0x068a: 7051,
	0x0689: 7052, 0x0686: 7053, 0x0685: 7054, 0x0683: 7055, 0x0670: 7056, 0x0668: 7057,
	0x0664: 7058, 0x0662: 7059, 0x0661: 7060, 0x0658: 7061, 0x0654: 7062, 0x0652: 7063,
	0x0651: 7064, 0x064c: 7065, 0x064a: 7066, 0x0649: 7067, 0x0646: 7068, 0x0645: 7069,
	0x0643: 7070, 0x0638: 7071, 0x0634: 7072, 0x0632: 7073, 0x0631: 7074, 0x062c: 7075,
	0x062a: 7076, 0x0629: 7077, 0x0626: 7078, 0x0625: 7079, 0x0623: 7080, 0x061c: 7081,
	0x061a: 7082, 0x0619: 7083, 0x0616: 7084, 0x0615: 7085, 0x0613: 7086, 0x060e: 7087,
	0x060d: 7088, 0x060b: 7089, 0x0607: 7090, 0x05e0: 7091, 0x05d0: 7092, 0x05c8: 7093,
	0x05c4: 7094, 0x05c2: 7095, 0x05c1: 7096, 0x05b0: 7097, 0x05a8: 7098, 0x05a4: 7099,
	0x05a2: 7100, 0x05a1: 7101, 0x0598: 7102, 0x0594: 7103, 0x0592: 7104, 0x0591: 7105,
	0x058c: 7106, 0x058a: 7107, 0x0589: 7108, 0x0586: 7109, 0x0585: 7110, 0x0583: 7111,
	0x0570: 7112, 0x0568: 7113, 0x0564: 7114, 0x0562: 7115, 0x0561: 7116, 0x0558: 7117,
	0x0554: 7118, 0x0552: 7119, 0x0551: 7120, 0x054c: 7121, 0x054a: 7122, 0x0549: 7123,
	0x0546: 7124, 0x0545: 7125, 0x0543: 7126, 0x0538: 7127, 0x0534: 7128, 0x0532: 7129,
	0x0531: 7130, 0x052c: 7131, 0x052a: 7132, 0x0529: 7133, 0x0526: 7134, 0x0525: 7135,
	0x0523: 7136, 0x051c: 7137, 0x051a: 7138, 0x0519: 7139, 0x0516: 7140, 0x0515: 7141,
	0x0513: 7142, 0x050e: 7143, 0x050d: 7144, 0x050b: 7145, 0x0507: 7146, 0x04f0: 7147,
	0x04e8: 7148, 0x04e4: 7149, 0x04e2: 7150, 0x04e1: 7151, 0x04d8: 7152, 0x04d4: 7153,
	0x04d2: 7154, 0x04d1: 7155, 0x04cc: 7156, 0x04ca: 7157, 0x04c9: 7158, 0x04c6: 7159,
	0x04c5: 7160, 0x04c3: 7161, 0x04b8: 7162, 0x04b4: 7163, 0x04b2: 7164, 0x04b1: 7165,
	0x04ac: 7166, 0x04aa: 7167, 0x04a9: 7168, 0x04a6: 7169, 0x04a5: 7170, 0x04a3: 7171,
	0x049c: 7172, 0x049a: 7173, 0x0499: 7174, 0x0496: 7175, 0x0495: 7176, 0x0493: 7177,
	0x048e: 7178, 0x048d: 7179, 0x048b: 7180, 0x0487: 7181, 0x0478: 7182, 0x0474: 7183,
	0x0472: 7184, 0x0471: 7185, 0x046c: 7186, 0x046a: 7187, 0x0469: 7188, 0x0466: 7189,
	0x0465: 7190, 0x0463: 7191, 0x045c: 7192, 0x045a: 7193, 0x0459: 7194, 0x0456: 7195,
	0x0455: 7196, 0x0453: 7197, 0x044e: 7198, 0x044d: 7199, 0x044b: 7200, 0x0447: 7201,
	0x043c: 7202, 0x043a: 7203, 0x0439: 7204, 0x0436: 7205, 0x0435: 7206, 0x0433: 7207,
	0x042e: 7208, 0x042d: 7209, 0x042b: 7210, 0x0427: 7211, 0x041e: 7212, 0x041d: 7213,
	0x041b: 7214, 0x0417: 7215, 0x040f: 7216, 0x03d0: 7217, 0x03c8: 7218, 0x03c4: 7219,
	0x03c2: 7220, 0x03c1: 7221, 0x03b0: 7222, 0x03a8: 7223, 0x03a4: 7224, 0x03a2: 7225,
	0x03a1: 7226, 0x0398: 7227, 0x0394: 7228, 0x0392: 7229, 0x0391: 7230, 0x038c: 7231,
	0x038a: 7232, 0x0389: 7233, 0x0386: 7234, 0x0385: 7235, 0x0383: 7236, 0x0370: 7237,
	0x0368: 7238, 0x0364: 7239, 0x0362: 7240, 0x0361: 7241, 0x0358: 7242, 0x0354: 7243,
	0x0352: 7244, 0x0351: 7245, 0x034c: 7246, 0x034a: 7247, 0x0349: 7248, 0x0346: 7249,
	0x0345: 7250, 0x0343: 7251, 0x0338: 7252, 0x0334: 7253, 0x0332: 7254, 0x0331: 7255,
	0x032c: 7256, 0x032a: 7257, 0x0329: 7258, 0x0326: 7259, 0x0325: 7260, 0x0323: 7261,
	0x031c: 7262, 0x031a: 7263, 0x0319: 7264, 0x0316: 7265, 0x0315: 7266, 0x0313: 7267,
	0x030e: 7268, 0x030d: 7269, 0x030b: 7270, 0x0307: 7271, 0x02f0: 7272, 0x02e8: 7273,
	0x02e4: 7274, 0x02e2: 7275, 0x02e1: 7276, 0x02d8: 7277, 0x02d4: 7278, 0x02d2: 7279,
	0x02d1: 7280, 0x02cc: 7281, 0x02ca: 7282, 0x02c9: 7283, 0x02c6: 7284, 0x02c5: 7285,
	0x02c3: 7286, 0x02b8: 7287, 0x02b4: 7288, 0x02b2: 7289, 0x02b1: 7290, 0x02ac: 7291,
	0x02aa: 7292, 0x02a9: 7293, 0x02a6: 7294, 0x02a5: 7295, 0x02a3: 7296, 0x029c: 7297,
	0x029a: 7298, 0x0299: 7299, 0x0296: 7300, 0x0295: 7301, 0x0293: 7302, 0x028e: 7303,
	0x028d: 7304, 0x028b: 7305, 0x0287: 7306, 0x0278: 7307, 0x0274: 7308, 0x0272: 7309,
	0x0271: 7310, 0x026c: 7311, 0x026a: 7312, 0x0269: 7313, 0x0266: 7314, 0x0265: 7315,
	0x0263: 7316, 0x025c: 7317, 0x025a: 7318, 0x0259: 7319, 0x0256: 7320, 0x0255: 7321,
	0x0253: 7322, 0x024e: 7323, 0x024d: 7324, 0x024b: 7325, 0x0247: 7326, 0x023c: 7327,
	0x023a: 7328, 0x0239: 7329, 0x0236: 7330, 0x0235: 7331, 0x0233: 7332, 0x022e: 7333,
	0x022d: 7334, 0x022b: 7335, 0x0227: 7336, 0x021e: 7337, 0x021d: 7338, 0x021b: 7339,
	0x0217: 7340, 0x020f: 7341, 0x01e8: 7342, 0x01e4: 7343, 0x01e2: 7344, 0x01e1: 7345,
	0x01d8: 7346, 0x01d4: 7347, 0x01d2: 7348, 0x01d1: 7349, 0x01cc: 7350, 0x01ca: 7351,
	0x01c9: 7352, 0x01c6: 7353, 0x01c5: 7354, 0x01c3: 7355, 0x01b8: 7356, 0x01b4: 7357,
	0x01b2: 7358, 0x01b1: 7359, 0x01ac: 7360, 0x01aa: 7361, 0x01a9: 7362, 0x01a6: 7363,
	0x01a5: 7364, 0x01a3: 7365, 0x019c: 7366, 0x019a: 7367, 0x0199: 7368, 0x0196: 7369,
	0x0195: 7370, 0x0193: 7371, 0x018e: 7372, 0x018d: 7373, 0x018b: 7374, 0x0187: 7375,
	0x0178: 7376, 0x0174: 7377, 0x0172: 7378, 0x0171: 7379, 0x016c: 7380, 0x016a: 7381,
	0x0169: 7382, 0x0166: 7383, 0x0165: 7384, 0x0163: 7385, 0x015c: 7386, 0x015a: 7387,
	0x0159: 7388, 0x0156: 7389, 0x0155: 7390, 0x0153: 7391, 0x014e: 7392, 0x014d: 7393,
	0x014b: 7394, 0x0147: 7395, 0x013c: 7396, 0x013a: 7397, 0x0139: 7398, 0x0136: 7399,
	0x0135: 7400, 0x0133: 7401, 0x012e: 7402, 0x012d: 7403, 0x012b: 7404, 0x0127: 7405,
	0x011e: 7406, 0x011d: 7407, 0x011b: 7408, 0x0117: 7409, 0x010f: 7410, 0x00f4: 7411,
	0x00f2: 7412, 0x00f1: 7413, 0x00ec: 7414, 0x00ea: 7415, 0x00e9: 7416, 0x00e6: 7417,
	0x00e5: 7418, 0x00e3: 7419, 0x00dc: 7420, 0x00da: 7421, 0x00d9: 7422, 0x00d6: 7423,
	0x00d5: 7424, 0x00d3: 7425, 0x00ce: 7426, 0x00cd: 7427, 0x00cb: 7428, 0x00c7: 7429,
	0x00bc: 7430, 0x00ba: 7431, 0x00b9: 7432, 0x00b6: 7433, 0x00b5: 7434, 0x00b3: 7435,
	0x00ae: 7436, 0x00ad: 7437, 0x00ab: 7438, 0x00a7: 7439, 0x009e: 7440, 0x009d: 7441,
	0x009b: 7442, 0x0097: 7443, 0x008f: 7444, 0x007a: 7445, 0x0079: 7446, 0x0076: 7447,
	0x0075: 7448, 0x0073: 7449, 0x006e: 7450, 0x006d: 7451, 0x006b: 7452, 0x0067: 7453,
	0x005e: 7454, 0x005d: 7455, 0x005b: 7456, 0x0057: 7457, 0x004f: 7458, 0x003d: 7459,
	0x003b: 7460, 0x0037: 7461, 0x002f: 7462,
}

// hashAdjust is indexed by the 9-bit bucket taken from the mixed prime product.
var hashAdjust = [512]uint16{
	11, 2060, 645, 2835, 9, 2791, 2675, 557, 521, 529, 3254, 1773, 2371, 155, 4099, 575,
	1265, 3, 4125, 1032, 1488, 4, 4, 2094, 3574, 16, 74, 2181, 1481, 3182, 29, 1037,
	2603, 3141, 2722, 37, 512, 879, 2590, 560, 3616, 547, 2703, 1466, 1307, 2208, 535, 85,
	612, 100, 2966, 3567, 1208, 938, 7, 49, 3747, 44, 1918, 63, 264, 1626, 942, 1217,
	562, 1934, 158, 4099, 0, 2082, 590, 111, 174, 7, 144, 3181, 2460, 1764, 104, 4098,
	126, 2291, 1377, 688, 64, 448, 313, 4152, 1622, 1573, 1753, 2604, 668, 2063, 2788, 2800,
	881, 15, 64, 954, 981, 1108, 95, 73, 27, 2079, 1237, 229, 4098, 2130, 4097, 4051,
	3140, 3174, 4096, 2835, 1516, 2665, 3474, 582, 175, 1377, 1921, 2429, 3, 4107, 2571, 4150,
	82, 2126, 3259, 126, 2054, 3489, 4169, 614, 2572, 1282, 194, 148, 4239, 914, 66, 1729,
	554, 41, 21, 0, 7, 168, 10, 2082, 102, 4161, 481, 2152, 2763, 1629, 81, 2310,
	1601, 2292, 2548, 29, 4104, 4111, 2526, 4190, 4106, 4123, 2965, 3158, 2239, 521, 152, 1952,
	1414, 546, 6, 178, 108, 3451, 530, 2085, 4105, 528, 23, 2645, 3099, 4114, 4, 560,
	40, 4227, 4099, 2783, 518, 1839, 2283, 677, 2052, 59, 3043, 999, 1973, 1407, 2070, 466,
	337, 256, 577, 4101, 514, 2072, 28, 788, 2104, 938, 3941, 527, 1071, 1462, 2159, 110,
	81, 4116, 3235, 664, 3381, 3351, 2745, 2177, 4102, 137, 550, 1161, 18, 1285, 75, 3965,
	285, 1560, 4099, 1135, 3201, 89, 0, 2737, 75, 4107, 4147, 638, 516, 532, 2121, 1670,
	3109, 3, 1407, 2763, 162, 2809, 2663, 2298, 647, 17, 40, 1212, 2225, 1015, 56, 2139,
	4129, 1165, 2052, 2877, 2377, 2061, 47, 3607, 2631, 2610, 767, 1752, 6210, 147, 516, 226,
	821, 2092, 65, 3008, 2266, 522, 51, 516, 1680, 1303, 2650, 4174, 4103, 4147, 660, 3463,
	2203, 2881, 42, 3988, 11, 763, 1489, 2641, 4136, 2581, 3095, 544, 2237, 1411, 603, 2380,
	28, 1728, 4179, 2222, 4151, 1309, 1256, 1199, 2560, 4117, 104, 2716, 674, 4160, 86, 4200,
	608, 2189, 1657, 2529, 569, 512, 2347, 4543, 596, 1159, 648, 131, 2638, 521, 3633, 607,
	665, 10, 29, 3081, 3225, 2692, 2256, 1608, 951, 2104, 2317, 46, 1614, 2302, 63, 4119,
	1, 865, 669, 1098, 163, 4096, 2051, 4337, 2092, 1174, 131, 331, 345, 1099, 4249, 316,
	4096, 88, 3746, 2365, 2357, 3348, 4107, 377, 4101, 4562, 59, 2087, 3880, 1000, 82, 2296,
	24, 2310, 976, 2554, 419, 1320, 1793, 865, 2597, 1137, 4126, 4105, 614, 2048, 2684, 1574,
	1861, 2128, 670, 771, 2797, 2221, 560, 589, 3156, 4130, 2594, 4149, 3588, 2180, 1373, 579,
	2354, 2255, 2295, 3011, 3477, 3511, 4102, 911, 1253, 11, 3428, 2501, 105, 2009, 65, 324,
	4118, 2059, 2184, 3091, 85, 42, 3639, 2663, 3272, 2810, 1391, 3, 2061, 2064, 4125, 3324,
	535, 919, 147, 2731, 3502, 4106, 3294, 2189, 4100, 4115, 3970, 1287, 1395, 1143, 2956, 2835,
	157, 2076, 644, 4434, 3829, 32, 78, 13, 4099, 1813, 1380, 19, 2870, 2667, 4107, 2121,
	9, 550, 2456, 2605, 3275, 2413, 1290, 2063, 4085, 3840, 2445, 4098, 2125, 2627, 2713, 1232,
}

// hashValues is indexed by the perfect hash of a prime product and holds the
// raw score of every hand with a repeated rank. Unused slots are zero.
var hashValues = [8192]uint16{
	5999, 6172, 4333, 3310, 2445, 154, 5096, 2463, 4984, 5608, 4087, 3632, 2387, 5360, 2262, 5660,
	152, 177, 315, 163, 312, 6147, 3259, 6029, 5955, 3299, 4538, 2352, 2407, 4071, 3305, 2949,
	2363, 2428, 3083, 3067, 4460, 320, 2791, 0, 6145, 2097, 2423, 3322, 119, 5561, 2267, 5638,
	2116, 2426, 6129, 5965, 2265, 3303, 3315, 6162, 309, 2924, 6015, 2313, 3311, 5566, 5183, 64,
	3964, 2465, 4154, 3378, 2397, 2451, 2462, 90, 2137, 2053, 316, 175, 3066, 3138, 2307, 6020,
	5502, 5476, 2271, 5856, 5243, 302, 4792, 2950, 0, 4629, 3205, 5743, 2598, 2827, 2469, 2452,
	2431, 2464, 5395, 2717, 2732, 5903, 2875, 4741, 4023, 2408, 2195, 72, 5118, 3901, 2602, 162,
	2939, 5204, 5480, 2569, 3306, 0, 3293, 4419, 4775, 2828, 0, 4744, 4859, 5344, 3126, 0,
	1777, 5275, 3544, 3487, 6176, 5894, 2294, 5217, 3535, 5827, 3641, 2127, 0, 3004, 6178, 1739,
	287, 6174, 3240, 6009, 4716, 0, 5345, 2167, 3191, 5813, 3611, 3747, 4586, 5890, 5364, 2806,
	3648, 5350, 2838, 4929, 5075, 3764, 283, 164, 136, 5040, 5170, 0, 0, 1727, 5632, 3785,
	6141, 2824, 3226, 5963, 2554, 3881, 5684, 5505, 4441, 5907, 6138, 2296, 2461, 4389, 0, 4849,
	2121, 4858, 3863, 4298, 2983, 2595, 2847, 5659, 5347, 2248, 3153, 5588, 5487, 4806, 2122, 0,
	5073, 0, 5768, 3981, 4977, 1945, 5475, 5267, 4642, 5477, 2278, 2159, 225, 296, 6046, 3931,
	3152, 3711, 249, 1791, 2918, 5869, 5576, 5918, 5862, 4660, 2165, 4887, 2315, 5645, 3002, 5796,
	0, 5064, 5259, 5248, 4513, 5261, 6041, 5017, 183, 48, 5219, 0, 5401, 2004, 0, 2304,
	4705, 0, 3230, 5667, 0, 2001, 3821, 133, 5815, 5699, 0, 3233, 3727, 4491, 2161, 3143,
	2597, 3773, 4260, 4843, 2826, 6001, 6023, 0, 5791, 4426, 5281, 5043, 2175, 5837, 2502, 2286,
	4124, 5696, 2174, 1991, 4385, 0, 4341, 0, 3245, 0, 5977, 4879, 5459, 4856, 6075, 5430,
	5000, 2303, 2168, 2072, 4411, 0, 2305, 6030, 5355, 5855, 3628, 2282, 5287, 5264, 4693, 4432,
	2237, 4265, 114, 3123, 5830, 2295, 3239, 4248, 3807, 0, 3005, 228, 135, 0, 2467, 3250,
	5752, 5050, 2148, 5676, 99, 2136, 5323, 5840, 3385, 2069, 6052, 4496, 5371, 4310, 2005, 4329,
	3182, 3207, 0, 4205, 4644, 1994, 3862, 2317, 238, 5602, 4959, 4409, 5359, 6051, 259, 4219,
	4509, 2861, 2082, 3091, 3586, 4552, 4403, 150, 5484, 4259, 284, 2238, 290, 3115, 6012, 3852,
	5956, 0, 3472, 2583, 5276, 3046, 5260, 2158, 319, 0, 3384, 4387, 2264, 2848, 2208, 5494,
	3273, 4807, 4944, 281, 5620, 4378, 6004, 5948, 0, 4046, 2627, 1729, 4425, 2815, 3263, 5300,
	256, 6116, 3156, 6049, 294, 5697, 6136, 1797, 0, 4402, 3457, 3755, 2323, 2358, 116, 3521,
	3447, 4610, 5639, 2360, 5779, 5242, 6134, 0, 4655, 4477, 6003, 5468, 2351, 0, 2258, 3248,
	295, 4326, 6124, 3706, 5579, 5913, 4958, 5441, 216, 2344, 5258, 6071, 4300, 2477, 6053, 5404,
	0, 6112, 2845, 2300, 2201, 4539, 160, 2253, 5467, 2164, 0, 3401, 3270, 3992, 261, 5686,
	6132, 5876, 5809, 5998, 5709, 6137, 300, 0, 5469, 3090, 5984, 6117, 5914, 5861, 2203, 2655,
	2326, 6050, 2829, 5080, 3282, 6106, 3244, 1849, 5331, 1872, 4863, 2233, 3147, 5902, 5164, 6151,
	3288, 6149, 6169, 6125, 5962, 6184, 5081, 2355, 5735, 5930, 2393, 5908, 2345, 5924, 3211, 161,
	3316, 6095, 4200, 6101, 6017, 3320, 2449, 2328, 3275, 2372, 5713, 2280, 5939, 5880, 5954, 2438,
	6060, 157, 2432, 6114, 5489, 5708, 6059, 2314, 5707, 6058, 5424, 5923, 2356, 6054, 4062, 128,
	307, 5402, 5994, 4864, 5800, 5794, 6165, 158, 6140, 2435, 5888, 3192, 166, 3403, 5952, 3292,
	6164, 6086, 5524, 6019, 3016, 5085, 2343, 2916, 5654, 5742, 6135, 2442, 6143, 6146, 2399, 5302,
	3307, 4827, 2376, 3287, 3698, 1873, 6073, 2277, 140, 6163, 5885, 2293, 5679, 5515, 141, 5389,
	129, 6057, 2459, 2327, 273, 2454, 6109, 5155, 156, 6119, 301, 3284, 2373, 6055, 2357, 5832,
	2330, 2388, 2298, 4003, 2379, 5737, 5835, 5879, 149, 5694, 5739, 5405, 5941, 6007, 5633, 4625,
	2420, 3289, 4842, 5513, 5740, 2054, 5693, 5871, 2453, 5973, 3254, 5677, 5727, 5589, 2132, 271,
	5851, 6039, 304, 5996, 2698, 6031, 5820, 4808, 2907, 3849, 5519, 2135, 6040, 5603, 4829, 5372,
	4204, 106, 6032, 3232, 3578, 5988, 6066, 5169, 1939, 4103, 5981, 2429, 1767, 5928, 5860, 5499,
	2251, 0, 4701, 6047, 2892, 123, 5220, 3151, 4609, 5826, 5650, 5501, 4700, 5048, 5932, 5987,
	5172, 5596, 4830, 3366, 237, 5044, 5979, 2906, 2405, 3007, 5678, 4525, 4998, 2404, 4919, 5872,
	5831, 4758, 5356, 6068, 5266, 5990, 2252, 3086, 2367, 5076, 5942, 4845, 3012, 3571, 191, 5717,
	2587, 2574, 3529, 5829, 6048, 5821, 2925, 5916, 2311, 4853, 3125, 4482, 5079, 5453, 5495, 5398,
	4421, 3238, 292, 2444, 5980, 5782, 5297, 5483, 5892, 4498, 5720, 2337, 6033, 5788, 5283, 2133,
	4286, 5078, 3432, 5702, 5399, 5497, 2808, 4817, 2309, 5140, 4347, 5569, 3297, 3150, 4619, 3144,
	3913, 2188, 2990, 4641, 4588, 5385, 6102, 5279, 2308, 5377, 3260, 5047, 4844, 2260, 2796, 5277,
	4271, 159, 2321, 1736, 1761, 12, 3050, 4824, 5246, 165, 3104, 4549, 142, 5127, 3858, 260,
	248, 2101, 5836, 5570, 3073, 5911, 6021, 4781, 6028, 4015, 5022, 3178, 2912, 5976, 5089, 2793,
	127, 2349, 3413, 1808, 3146, 4776, 5292, 3985, 2289, 5870, 4634, 2418, 2198, 5315, 5511, 5233,
	4524, 5764, 2243, 5552, 3762, 5703, 5182, 2261, 5673, 2999, 3081, 4826, 4405, 5175, 2214, 5685,
	2249, 4962, 5818, 4197, 5159, 3228, 3760, 5582, 5691, 5905, 5541, 4835, 0, 4198, 5294, 3745,
	1757, 2981, 4163, 4017, 5574, 2821, 5263, 5901, 250, 5775, 2200, 5657, 2855, 5749, 2126, 5136,
	3765, 2919, 4353, 3602, 2359, 5473, 2227, 5049, 2716, 4186, 180, 2714, 190, 5883, 4407, 5823,
	5616, 5781, 3120, 6045, 3049, 4847, 3761, 3196, 5265, 3060, 2274, 5854, 5970, 2713, 2196, 3040,
	3944, 5780, 2134, 305, 5058, 3459, 4841, 3396, 4839, 3184, 5369, 3179, 5550, 4728, 5390, 5239,
	4995, 5806, 4600, 2389, 3957, 5352, 0, 2283, 5852, 3241, 5522, 5206, 0, 4778, 3462, 4366,
	2240, 2100, 1999, 2460, 5534, 2194, 3982, 2034, 3236, 2594, 5790, 4523, 5658, 18, 5069, 2348,
	4777, 5438, 4182, 5382, 1751, 5273, 2914, 2179, 5383, 2437, 2447, 3215, 5772, 3997, 1963, 2814,
	103, 313, 3000, 5193, 5792, 3758, 3170, 139, 6079, 3048, 4560, 2223, 5728, 5766, 5285, 3271,
	4861, 2219, 5488, 2680, 3543, 5839, 5623, 4040, 4636, 4799, 2338, 1962, 5214, 2002, 1899, 6107,
	3139, 5753, 4480, 2081, 2292, 5811, 2797, 1917, 1805, 5327, 5850, 3229, 4820, 4975, 2993, 4623,
	4963, 1789, 5592, 5208, 5557, 0, 3955, 5665, 5455, 56, 2600, 2816, 4991, 3219, 3065, 3455,
	4587, 4805, 4321, 5537, 5776, 3057, 2899, 4760, 4994, 6006, 4846, 2115, 146, 5670, 2183, 3134,
	5692, 4510, 2813, 2712, 1924, 210, 0, 5899, 5514, 3003, 3281, 4793, 17, 0, 4375, 4884,
	4739, 5612, 3968, 2430, 5388, 4559, 1807, 1935, 5690, 5607, 5101, 4803, 3540, 132, 1955, 5567,
	209, 4195, 205, 5595, 5767, 4410, 3709, 2108, 2401, 3729, 4996, 0, 5133, 2991, 3339, 5227,
	0, 4990, 4148, 4694, 2228, 5253, 5842, 4630, 2268, 4280, 2080, 272, 3113, 3923, 3342, 3255,
	5104, 4683, 2663, 2876, 3507, 4579, 0, 1717, 2178, 5418, 0, 5336, 5311, 4488, 3969, 3754,
	1981, 2231, 5067, 5917, 3527, 4521, 2381, 5180, 2205, 4168, 4105, 5587, 0, 5254, 2576, 6120,
	15, 2055, 0, 78, 2234, 2702, 4573, 0, 4368, 4595, 5465, 112, 5750, 3020, 3055, 2020,
	4802, 4999, 1932, 3262, 6183, 3594, 2909, 0, 4851, 5451, 0, 1697, 2901, 4191, 5822, 5378,
	3928, 2273, 3338, 5934, 5332, 4558, 1907, 3177, 2218, 2566, 0, 4953, 2700, 3832, 5262, 3495,
	5949, 4818, 4922, 4169, 4980, 2989, 1896, 5985, 3280, 143, 4369, 3335, 5472, 4593, 6093, 1870,
	4689, 5493, 0, 2683, 3963, 3216, 113, 4751, 4102, 3001, 0, 0, 6156, 5641, 4687, 4338,
	4263, 3054, 3024, 298, 4143, 4890, 5564, 5704, 2739, 2903, 2975, 4815, 6061, 2599, 5366, 4295,
	3538, 5810, 0, 6062, 5142, 2795, 5573, 4475, 3158, 3847, 2695, 189, 6099, 5975, 5216, 5433,
	4604, 4923, 5986, 4598, 5873, 4773, 0, 2737, 5411, 5929, 0, 5729, 3751, 6011, 2775, 4081,
	4666, 4973, 3927, 3272, 4097, 2563, 4307, 2450, 5546, 5529, 5460, 2951, 2066, 4155, 2908, 4196,
	2800, 102, 4500, 5995, 5748, 5662, 3167, 0, 1859, 4257, 0, 4149, 4899, 4489, 0, 0,
	0, 0, 5016, 4612, 1952, 3047, 4279, 4255, 6010, 6150, 235, 4519, 100, 2755, 0, 4972,
	3926, 2226, 5342, 3777, 3098, 2810, 1864, 3061, 4606, 5462, 1893, 2110, 2160, 5746, 5614, 5801,
	3776, 2509, 3883, 0, 4889, 5132, 4074, 5380, 4952, 0, 5619, 5606, 0, 3235, 0, 169,
	4398, 4608, 4957, 0, 3395, 0, 5445, 6155, 3074, 3588, 5611, 3398, 6056, 1741, 2530, 4039,
	5286, 5238, 0, 5328, 1877, 2998, 4691, 2575, 4580, 4037, 2288, 0, 5598, 3353, 0, 201,
	0, 4766, 2676, 1977, 0, 2584, 0, 0, 4179, 4685, 3998, 6115, 5560, 5304, 5549, 2972,
	229, 2774, 3202, 4554, 3323, 2609, 5841, 3704, 2434, 3582, 3121, 0, 266, 172, 2545, 124,
	3028, 4822, 3166, 308, 0, 2656, 3412, 3488, 246, 4631, 4985, 5803, 2749, 1940, 2347, 6084,
	4814, 3797, 1787, 5192, 197, 4383, 5052, 4568, 3537, 2217, 4754, 0, 4240, 3560, 4928, 0,
	5368, 5329, 2664, 1735, 3756, 5992, 0, 4865, 3444, 3684, 2900, 2537, 54, 4837, 2959, 1988,
	3555, 4478, 2764, 4412, 1806, 3247, 2660, 2982, 3976, 6038, 5406, 0, 1912, 5317, 4605, 5033,
	4270, 2106, 0, 4118, 4626, 3294, 0, 5933, 4545, 126, 4769, 217, 4175, 0, 5335, 0,
	2518, 3910, 4090, 3850, 6002, 212, 0, 2010, 5330, 0, 4190, 0, 3618, 107, 0, 3227,
	5507, 2621, 5741, 2146, 2063, 5627, 3190, 3938, 5464, 6154, 5351, 0, 5540, 5157, 3078, 3222,
	5643, 2285, 2090, 5014, 5618, 5648, 2652, 0, 2058, 2920, 279, 2504, 4966, 5176, 5761, 5617,
	0, 4892, 5324, 5413, 4394, 278, 3345, 5900, 5812, 4364, 5299, 3346, 1993, 3218, 81, 2946,
	0, 3680, 3749, 5983, 3088, 5198, 2590, 5584, 3400, 286, 3855, 4359, 5471, 0, 3009, 3076,
	5391, 5553, 4172, 2346, 5103, 4578, 2235, 3867, 3295, 0, 3983, 5068, 236, 240, 2874, 0,
	5054, 2970, 3089, 4950, 2173, 2222, 5492, 5031, 3261, 3508, 4722, 4955, 3300, 2016, 1691, 2752,
	5226, 2177, 4906, 3753, 2893, 0, 2396, 2588, 6123, 4937, 4992, 2172, 4505, 0, 1842, 5938,
	3925, 2640, 2526, 4852, 4256, 3523, 4334, 4299, 5386, 4380, 5431, 3885, 3819, 5953, 4331, 5284,
	2802, 4875, 2888, 3900, 4659, 3149, 1821, 4362, 5481, 275, 2489, 2525, 2064, 2665, 5601, 3929,
	3140, 1989, 3556, 2794, 3252, 5463, 2724, 0, 2184, 2564, 3321, 2299, 1983, 5124, 5959, 2013,
	4949, 2984, 2482, 5376, 3532, 3744, 2215, 2153, 4738, 4526, 0, 2113, 1636, 4909, 4801, 4898,
	1928, 2443, 3576, 3522, 0, 5200, 3333, 4613, 5034, 2961, 5397, 4254, 2052, 5381, 3918, 3707,
	3840, 2060, 3176, 268, 4616, 5533, 3942, 5444, 4374, 4343, 0, 2036, 0, 4401, 2694, 1633,
	5765, 5012, 3175, 3767, 2439, 2807, 0, 6014, 6160, 4651, 4599, 1858, 1740, 5037, 2089, 2580,
	2210, 4550, 0, 4562, 130, 1869, 2091, 0, 3490, 3739, 4481, 5213, 4901, 2593, 3864, 3492,
	4083, 0, 5774, 5314, 4354, 2902, 3603, 4627, 4115, 5675, 2209, 5218, 3157, 4113, 2960, 4632,
	3075, 5651, 5586, 5714, 4934, 5635, 3234, 2099, 5162, 289, 2675, 5964, 3257, 2436, 2395, 5005,
	4832, 297, 3509, 3877, 5211, 0, 0, 0, 4258, 3674, 4384, 2225, 1667, 1885, 4067, 3387,
	4465, 5754, 3082, 147, 6067, 1867, 2310, 3999, 3645, 2978, 4804, 4748, 282, 1830, 4765, 4386,
	2287, 5967, 5770, 4794, 2884, 0, 5719, 4679, 2427, 2768, 3117, 5756, 2995, 3242, 3319, 2191,
	0, 4854, 5542, 5165, 3085, 2835, 4911, 2466, 3743, 3961, 0, 2778, 5236, 4289, 4582, 224,
	4729, 2701, 5138, 2929, 2120, 3616, 6096, 5346, 0, 5906, 13, 2487, 3045, 3425, 5559, 1798,
	2699, 0, 4954, 1649, 3118, 1984, 4188, 4812, 5974, 5626, 1647, 6077, 4913, 0, 4088, 5491,
	0, 3970, 0, 5799, 4390, 4146, 5721, 5958, 0, 0, 0, 2281, 2417, 5393, 6166, 0,
	4840, 215, 0, 4176, 2891, 3691, 5535, 3823, 2725, 3220, 3772, 4978, 5252, 5634, 3974, 4551,
	3846, 3871, 5482, 258, 5637, 5525, 276, 4904, 5149, 0, 6104, 4170, 2544, 6157, 5007, 4787,
	6016, 5209, 0, 6126, 5797, 2369, 4336, 1835, 4757, 2189, 4561, 3960, 0, 6094, 6171, 1953,
	4785, 0, 1959, 3599, 2216, 3919, 4788, 4767, 4250, 3694, 2577, 3678, 0, 5849, 32, 5937,
	3164, 5443, 2840, 5647, 3990, 247, 4695, 5167, 4001, 5245, 5520, 2040, 3965, 2596, 2446, 3221,
	2291, 2786, 5298, 2250, 6070, 5028, 2049, 4187, 2147, 4174, 4637, 3197, 3930, 5997, 0, 3958,
	0, 3069, 3959, 4979, 2922, 1619, 5653, 2402, 5972, 3558, 5163, 2398, 5571, 0, 1698, 2689,
	3448, 0, 3716, 4908, 0, 1895, 4581, 5878, 5070, 5838, 2032, 3145, 4993, 2476, 5498, 0,
	4935, 0, 0, 0, 2301, 4129, 2756, 4064, 101, 0, 5935, 155, 2364, 0, 285, 4671,
	5293, 2180, 0, 6168, 0, 1780, 5387, 79, 2015, 4639, 4365, 0, 3880, 5680, 5798, 0,
	5723, 2974, 0, 4971, 5045, 2823, 2514, 5625, 5805, 2362, 4813, 5868, 1923, 1693, 2931, 4144,
	2578, 4325, 2895, 0, 3705, 2213, 0, 2833, 4128, 2692, 0, 0, 1750, 2419, 0, 3542,
	1738, 108, 0, 314, 2322, 4622, 1793, 4567, 6110, 2024, 3768, 4988, 3464, 2378, 3362, 1781,
	3536, 6170, 5307, 4339, 4225, 6034, 3504, 3786, 4444, 3724, 2111, 2406, 1769, 2144, 0, 3214,
	5875, 5580, 0, 3666, 5178, 1968, 0, 5961, 5083, 5027, 5105, 2382, 0, 255, 2519, 4123,
	4555, 3135, 3449, 3079, 2272, 5910, 2154, 2852, 5624, 2934, 121, 257, 5669, 4779, 5348, 0,
	2302, 83, 0, 4833, 6090, 0, 3052, 6113, 2098, 4920, 2412, 5122, 4201, 3643, 0, 5895,
	0, 0, 6175, 0, 0, 3714, 5615, 3491, 4117, 3967, 4164, 2708, 0, 5442, 3783, 2170,
	4253, 5516, 5088, 3500, 2703, 1801, 3268, 0, 3309, 5957, 0, 5379, 3105, 2057, 2187, 0,
	4220, 3210, 5001, 0, 0, 5828, 4528, 5738, 5474, 0, 2780, 2709, 5668, 1732, 5848, 2923,
	0, 311, 3423, 3217, 0, 3200, 5528, 0, 5093, 5730, 4860, 0, 1840, 5575, 5270, 2190,
	0, 0, 5490, 3591, 3607, 5562, 0, 0, 4924, 5867, 5845, 1800, 3424, 3989, 0, 2881,
	2241, 4471, 4114, 70, 0, 5195, 0, 4709, 2105, 5280, 3631, 2117, 1845, 5046, 3141, 4704,
	317, 2380, 4035, 2059, 5807, 2994, 0, 5098, 0, 3379, 0, 3206, 0, 223, 153, 2433,
	3199, 5036, 5597, 1903, 0, 0, 5824, 4855, 4239, 115, 0, 0, 0, 2368, 5322, 0,
	0, 3267, 3372, 0, 0, 1881, 4241, 6078, 3025, 2071, 3741, 3934, 0, 5429, 0, 2247,
	2353, 0, 3887, 3474, 0, 3154, 4479, 2232, 0, 4222, 1841, 4138, 4710, 1681, 5736, 4796,
	2484, 0, 0, 3530, 0, 2324, 4517, 4825, 73, 4914, 6083, 3391, 0, 0, 2763, 125,
	3251, 3111, 0, 5422, 0, 3336, 1938, 3058, 0, 0, 4110, 2169, 2224, 5674, 2759, 2976,
	5161, 5874, 4970, 5687, 0, 0, 5577, 4620, 0, 0, 3891, 2992, 11, 204, 1684, 0,
	0, 1640, 4034, 3181, 5915, 4294, 5816, 5321, 0, 0, 0, 3187, 2479, 4497, 4577, 5423,
	1645, 2516, 6069, 4678, 5591, 4597, 5672, 5478, 0, 4373, 5646, 3137, 0, 0, 3562, 1937,
	2480, 5274, 5814, 0, 3160, 4688, 0, 0, 4831, 3068, 1927, 5652, 1623, 2553, 3605, 0,
	5029, 2220, 2753, 95, 6024, 0, 5545, 5590, 2229, 2339, 2798, 0, 2890, 2611, 0, 2539,
	6089, 0, 2898, 4459, 6152, 4357, 2819, 3905, 1954, 4910, 96, 1982, 1802, 2882, 0, 3102,
	4420, 2654, 5695, 2104, 3208, 3503, 3922, 3600, 2284, 2948, 0, 5414, 1934, 4752, 0, 2894,
	2718, 0, 2366, 6022, 1910, 4576, 1829, 0, 2817, 5978, 2801, 5452, 0, 5102, 3193, 5896,
	4005, 0, 1961, 2573, 0, 3015, 3720, 1839, 5400, 4010, 2866, 4245, 0, 2706, 1862, 5055,
	3763, 0, 5925, 0, 0, 6087, 2650, 6142, 5457, 5760, 4162, 2341, 4232, 5129, 3110, 3771,
	0, 5244, 0, 4228, 2325, 82, 4897, 5179, 0, 5415, 3023, 5518, 3994, 51, 4430, 5065,
	3824, 5629, 4377, 0, 5421, 3301, 3258, 6159, 3725, 0, 2458, 0, 3485, 1722, 1611, 274,
	0, 5111, 3740, 3935, 3286, 5320, 2079, 3100, 5722, 5305, 3308, 6158, 0, 3581, 2409, 5857,
	6181, 3212, 3314, 3008, 5858, 2457, 2455, 117, 5947, 4723, 3017, 2415, 5202, 5778, 5184, 3519,
	3092, 2269, 5886, 6085, 2440, 2809, 3908, 2783, 5015, 6185, 3094, 2425, 0, 1815, 6127, 2361,
	4891, 3662, 1863, 2491, 2581, 4504, 5154, 0, 5011, 3304, 3722, 5340, 2485, 4418, 6044, 2494,
	0, 3734, 2867, 4424, 6121, 2336, 4772, 3598, 1753, 6081, 5944, 3312, 0, 5074, 1786, 4030,
	2818, 1783, 4320, 6063, 2411, 2000, 4319, 2726, 2691, 4116, 6167, 4621, 2837, 0, 2915, 1894,
	5700, 4290, 1911, 0, 2192, 5319, 3470, 3256, 5325, 1626, 5536, 5117, 3344, 3329, 3071, 2266,
	3557, 2371, 3416, 2212, 5333, 0, 5884, 3285, 5301, 0, 5960, 5882, 5290, 5353, 0, 5291,
	3735, 5373, 3128, 4989, 0, 4006, 2065, 214, 0, 2332, 0, 5071, 3636, 0, 3116, 2896,
	1702, 5523, 2182, 2316, 1703, 0, 4022, 0, 3277, 5408, 3826, 5426, 5544, 3169, 3189, 0,
	5147, 3390, 0, 4075, 3155, 4483, 3109, 0, 3483, 92, 1852, 3506, 2088, 5982, 5644, 3223,
	3597, 5448, 0, 2897, 1630, 3053, 3940, 6103, 3377, 2245, 3269, 3198, 3984, 0, 0, 3350,
	6097, 2555, 4965, 5435, 0, 104, 3203, 1686, 5116, 3364, 5357, 5268, 5510, 134, 3750, 5784,
	2067, 4529, 5877, 3298, 4038, 4730, 0, 5205, 3861, 3625, 6013, 5072, 3814, 0, 2166, 5769,
	4640, 122, 0, 74, 0, 4658, 2152, 4312, 5503, 2197, 5912, 3902, 3703, 6128, 5610, 5640,
	3646, 2416, 265, 1655, 5403, 4684, 2935, 4452, 131, 5922, 3168, 39, 5666, 4059, 4624, 6000,
	2414, 306, 5833, 69, 3723, 0, 6148, 245, 5221, 4964, 2061, 0, 3677, 3185, 0, 2674,
	3296, 4036, 3466, 3563, 6180, 4782, 4942, 5251, 2969, 5843, 3186, 3318, 5943, 0, 0, 3817,
	5349, 1987, 4736, 3518, 2910, 0, 4467, 2687, 4947, 0, 3107, 4878, 2977, 4883, 4907, 3334,
	5731, 3565, 5755, 6025, 1898, 5808, 2257, 5456, 0, 4464, 3243, 145, 5062, 4870, 0, 0,
	4417, 3950, 4797, 5250, 3376, 0, 2456, 0, 3368, 5921, 2421, 5558, 2025, 2236, 5834, 4533,
	234, 1700, 5795, 2374, 4078, 5538, 2003, 5968, 1628, 5051, 3131, 2422, 4540, 3731, 5724, 5234,
	0, 5256, 0, 3161, 1644, 3209, 4305, 2448, 3036, 0, 5793, 1676, 3452, 3953, 5989, 0,
	3810, 0, 0, 3276, 3388, 5583, 5512, 1690, 5904, 3084, 3127, 4848, 1820, 6088, 0, 3769,
	2276, 2968, 1922, 5500, 5454, 0, 148, 3013, 2777, 6131, 4874, 5532, 4534, 3534, 3738, 4065,
	4809, 4249, 5604, 5508, 2129, 4699, 6153, 4404, 4745, 5726, 5447, 0, 0, 3924, 4546, 2921,
	5420, 5255, 0, 2131, 202, 3422, 1678, 5137, 5762, 0, 2628, 2230, 3520, 5269, 3225, 2318,
	3077, 5185, 3458, 3688, 5951, 2765, 4229, 2522, 2904, 5084, 5568, 4226, 3671, 0, 2812, 4142,
	3278, 0, 4473, 4986, 3302, 5224, 4536, 3274, 1673, 4516, 3689, 4045, 1724, 5466, 1737, 2193,
	4743, 198, 2171, 3886, 5887, 4111, 1950, 5135, 0, 4423, 3859, 0, 5006, 4315, 3897, 2383,
	3790, 1634, 4733, 2624, 0, 1868, 0, 6105, 4494, 1812, 2073, 4399, 36, 5425, 1639, 226,
	0, 0, 5092, 1936, 2715, 3559, 3613, 4532, 3781, 0, 5174, 3596, 3461, 0, 1715, 2270,
	3865, 4672, 3106, 0, 2092, 5461, 0, 0, 3977, 5543, 3360, 2185, 3059, 2499, 5945, 3283,
	2078, 5819, 5993, 3476, 1822, 0, 0, 3890, 5141, 5600, 2319, 3525, 4948, 2820, 5802, 4628,
	0, 0, 4166, 0, 2128, 2696, 5554, 1995, 4903, 4698, 4007, 4654, 3411, 3547, 0, 5436,
	0, 3973, 2549, 0, 4079, 5785, 0, 3614, 5024, 1975, 5897, 0, 0, 0, 3132, 97,
	4668, 4873, 2585, 5642, 4393, 5146, 4798, 4918, 5374, 4838, 3386, 4544, 93, 0, 0, 3820,
	5018, 0, 4388, 4061, 2275, 2803, 3064, 2112, 4130, 2643, 3099, 4048, 4272, 2889, 4518, 4468,
	0, 4313, 4238, 4786, 0, 3484, 5817, 2130, 4708, 5053, 0, 1969, 5303, 0, 5131, 3172,
	25, 1960, 5804, 2653, 5212, 4780, 4763, 4617, 2026, 5450, 4615, 0, 2572, 0, 2589, 4943,
	211, 4930, 0, 1653, 3183, 3580, 0, 5757, 2682, 2784, 4141, 4905, 4372, 4735, 4145, 242,
	5572, 3742, 4795, 0, 3907, 0, 5008, 0, 0, 2028, 5126, 144, 2103, 5786, 0, 3728,
	0, 0, 2118, 6064, 0, 0, 3044, 3419, 2517, 2570, 4656, 5449, 2911, 4261, 0, 5971,
	1755, 2917, 0, 1978, 0, 5392, 6027, 5630, 0, 0, 0, 4614, 4379, 2199, 4082, 0,
	5125, 2056, 3956, 1916, 0, 1708, 2985, 4297, 5240, 3195, 5950, 5056, 1748, 0, 2930, 195,
	0, 2666, 4209, 2973, 4192, 0, 0, 0, 94, 5427, 0, 0, 5927, 0, 233, 5337,
	5847, 0, 2181, 4349, 110, 4696, 2515, 4025, 4951, 5712, 4732, 5121, 5181, 3681, 0, 4210,
	2155, 4160, 5128, 3842, 0, 3063, 4047, 0, 0, 3019, 0, 5032, 0, 3619, 5470, 0,
	2329, 41, 3051, 5681, 0, 1804, 2571, 288, 0, 1921, 0, 5628, 3173, 5789, 4926, 2565,
	2634, 0, 4057, 0, 0, 5853, 91, 5763, 0, 0, 3803, 4202, 2958, 2693, 5112, 0,
	5715, 80, 1792, 5585, 3972, 4277, 2263, 4422, 2548, 5197, 0, 0, 120, 2940, 4159, 4886,
	2872, 4080, 4458, 0, 4361, 2668, 4727, 270, 4522, 2254, 2719, 5384, 5313, 4866, 2776, 3237,
	3774, 3505, 4960, 2785, 2141, 0, 3027, 5237, 2685, 0, 1998, 4585, 0, 3962, 3895, 0,
	0, 0, 0, 5605, 2871, 0, 3056, 3129, 4702, 0, 2620, 4896, 5440, 1997, 0, 3909,
	0, 4400, 4927, 0, 4936, 1971, 2312, 5021, 3730, 0, 5751, 2659, 111, 0, 0, 5365,
	3679, 5486, 0, 0, 0, 4213, 2107, 5578, 4976, 0, 4543, 4235, 5706, 0, 1731, 5241,
	0, 6043, 3463, 2211, 5023, 0, 0, 3533, 3514, 0, 4437, 1671, 6065, 2163, 5177, 0,
	3331, 2162, 5417, 5370, 5223, 4663, 5517, 0, 6018, 2534, 2041, 5547, 4474, 0, 0, 4451,
	4737, 2844, 4740, 5594, 2114, 0, 4337, 0, 2971, 0, 4956, 0, 1926, 5030, 4646, 0,
	3845, 4742, 0, 1871, 3327, 0, 0, 5341, 3479, 5123, 0, 5166, 2789, 3669, 0, 3165,
	1931, 4882, 0, 0, 0, 5038, 1990, 0, 0, 3757, 4941, 5548, 3062, 4283, 2648, 3038,
	1865, 0, 269, 5412, 3337, 4224, 167, 0, 213, 0, 0, 2928, 3130, 3415, 3374, 4303,
	2804, 2582, 0, 4181, 4285, 0, 0, 2944, 0, 0, 5593, 6072, 0, 3451, 6122, 0,
	5844, 5097, 5061, 5689, 2705, 2068, 0, 151, 1933, 6144, 0, 2206, 2883, 2707, 4381, 3921,
	3043, 0, 0, 0, 2962, 0, 0, 5846, 0, 0, 5725, 3231, 4185, 1897, 5661, 2386,
	2290, 2697, 5479, 4571, 0, 5339, 5215, 5228, 1707, 3213, 0, 0, 0, 0, 3943, 0,
	5156, 1759, 4026, 3802, 0, 3996, 3122, 0, 6092, 3159, 3726, 3915, 4512, 0, 5396, 0,
	4085, 2742, 5940, 5432, 4566, 5367, 4823, 5758, 4344, 137, 1659, 4645, 2568, 3954, 3264, 4665,
	4352, 5271, 0, 3482, 5969, 5362, 0, 1809, 0, 3114, 0, 1763, 5521, 2481, 4764, 3574,
	5312, 5428, 2006, 0, 310, 322, 2204, 6182, 2543, 5889, 0, 5636, 0, 6042, 5310, 2176,
	65, 2403, 0, 0, 3818, 3896, 1857, 2523, 4301, 0, 4413, 4367, 5148, 2441, 0, 3499,
	4093, 4583, 3531, 5168, 4572, 4997, 3545, 2125, 0, 0, 4137, 1884, 0, 3119, 0, 1712,
	0, 0, 4119, 4594, 2096, 0, 24, 4233, 3511, 4712, 0, 0, 4020, 3971, 4869, 3070,
	3358, 3683, 0, 2471, 0, 0, 0, 2524, 3332, 2046, 5710, 3441, 1617, 0, 3658, 2392,
	0, 3087, 4208, 3382, 2246, 0, 0, 3813, 5555, 4121, 2605, 4819, 5777, 6026, 2385, 0,
	4150, 192, 3042, 1951, 5439, 5530, 4915, 2051, 0, 4520, 2156, 2562, 3835, 5010, 1746, 2207,
	4395, 0, 0, 4335, 4603, 0, 5866, 2772, 0, 4834, 2095, 1946, 2579, 4553, 0, 3860,
	0, 0, 3622, 2123, 5225, 5865, 2157, 2729, 0, 4821, 3317, 321, 4189, 5416, 5394, 1779,
	4514, 6076, 4556, 2967, 0, 0, 2773, 6005, 4178, 4476, 3664, 3685, 5130, 0, 5688, 4269,
	5893, 2488, 5745, 1685, 0, 5257, 4376, 2505, 2256, 0, 0, 0, 3224, 2927, 3894, 1967,
	3180, 0, 5229, 0, 4392, 4348, 4557, 2391, 1775, 0, 5531, 4770, 5235, 0, 6035, 109,
	0, 4183, 0, 5526, 2630, 0, 1944, 0, 5407, 0, 5020, 0, 4360, 1888, 2151, 1930,
	5199, 4515, 0, 0, 1675, 2657, 3486, 0, 4184, 4346, 3246, 0, 3142, 5160, 4165, 3828,
	5173, 0, 6036, 2633, 4029, 3615, 1776, 1694, 0, 3831, 2027, 0, 0, 2150, 1796, 5109,
	3805, 5077, 0, 2532, 0, 5338, 2297, 2625, 2986, 5358, 1643, 1996, 0, 2790, 3546, 5613,
	0, 0, 3898, 0, 2825, 200, 1902, 0, 0, 4774, 2618, 105, 0, 6177, 6173, 0,
	2050, 0, 4931, 2333, 0, 5203, 0, 5565, 0, 0, 4177, 2632, 4158, 3583, 1716, 3988,
	3642, 5664, 0, 3917, 5759, 38, 5966, 5732, 4134, 5771, 4127, 0, 2202, 2520, 1904, 5035,
	0, 98, 4635, 2799, 2690, 4084, 0, 0, 0, 251, 0, 4643, 0, 3746, 5898, 2142,
	1642, 3489, 0, 231, 0, 0, 1721, 3759, 2669, 5230, 2862, 0, 0, 3946, 0, 5581,
	4836, 2239, 2533, 0, 4982, 0, 5066, 5539, 2988, 4316, 0, 1986, 0, 0, 4734, 0,
	0, 34, 2350, 1846, 0, 5059, 3524, 3945, 3408, 0, 5409, 4638, 3037, 4469, 1816, 2885,
	2987, 0, 0, 2710, 0, 0, 4153, 3330, 4455, 5191, 4912, 0, 4358, 5232, 4692, 3708,
	3815, 0, 0, 4607, 5716, 293, 4397, 5599, 203, 89, 4667, 5247, 2841, 1692, 0, 1621,
	3101, 0, 2109, 5864, 0, 3966, 2340, 0, 0, 0, 3313, 0, 5119, 30, 0, 3869,
	0, 0, 0, 0, 3471, 0, 4345, 0, 0, 0, 0, 0, 4761, 0, 0, 0,
	0, 0, 0, 4450, 4016, 0, 0, 0, 0, 2870, 0, 0, 0, 1754, 0, 173,
	5249, 0, 0, 0, 2094, 0, 0, 0, 3676, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 4448, 2503, 0, 0, 0, 0, 0, 2018, 0, 0, 0, 0, 4287, 0,
	0, 0, 0, 3370, 0, 0, 0, 0, 0, 0, 0, 0, 4063, 0, 1650, 0,
	1635, 0, 0, 0, 0, 0, 3629, 0, 0, 1861, 0, 0, 0, 4657, 0, 0,
	76, 0, 4000, 0, 0, 3838, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 1742, 0, 0, 1970, 0, 3854, 0, 1851, 0, 0,
	0, 0, 0, 3604, 0, 0, 0, 0, 5194, 0, 3812, 5009, 0, 0, 0, 0,
	0, 1734, 0, 2782, 0, 0, 0, 0, 4447, 0, 0, 0, 196, 0, 3383, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4725, 0, 3041, 4811, 0, 0,
	3665, 0, 0, 0, 0, 0, 3809, 5222, 0, 3517, 0, 0, 3663, 0, 3839, 0,
	0, 0, 0, 0, 0, 2658, 4328, 0, 0, 0, 0, 0, 0, 3404, 0, 0,
	2478, 61, 1719, 0, 0, 3713, 0, 0, 88, 0, 0, 0, 1641, 1943, 0, 57,
	0, 0, 0, 0, 0, 3494, 0, 4939, 0, 0, 2727, 0, 1966, 0, 0, 0,
	0, 3800, 0, 0, 0, 0, 3733, 0, 0, 0, 0, 2770, 0, 1705, 0, 4531,
	2842, 1906, 1749, 0, 0, 0, 0, 0, 0, 5115, 0, 241, 0, 4713, 1925, 0,
	0, 0, 0, 2953, 4485, 4894, 0, 0, 0, 59, 0, 0, 0, 0, 4051, 303,
	0, 3841, 0, 3941, 4296, 0, 0, 0, 0, 0, 0, 2857, 0, 0, 0, 0,
	0, 2500, 0, 0, 0, 4207, 0, 0, 0, 0, 0, 63, 1669, 0, 0, 0,
	0, 0, 0, 0, 1853, 1683, 0, 0, 0, 0, 2943, 0, 3653, 0, 0, 4669,
	0, 0, 0, 0, 0, 222, 0, 0, 0, 0, 0, 0, 0, 1632, 0, 0,
	3952, 0, 0, 0, 0, 3420, 0, 0, 0, 0, 0, 3564, 4206, 0, 2932, 0,
	4721, 4024, 0, 0, 0, 3882, 0, 0, 0, 0, 2887, 0, 45, 0, 0, 0,
	0, 0, 0, 0, 4221, 0, 0, 1695, 0, 0, 0, 0, 232, 3936, 0, 0,
	0, 0, 0, 4981, 0, 0, 0, 0, 2529, 0, 0, 4099, 0, 0, 0, 0,
	0, 1743, 0, 0, 0, 0, 4276, 3249, 4662, 0, 4086, 6108, 0, 1819, 4535, 0,
	0, 0, 3799, 0, 171, 2498, 3920, 0, 0, 4933, 3766, 0, 0, 0, 0, 0,
	0, 1747, 1726, 2139, 0, 0, 5683, 2771, 6080, 0, 0, 3201, 1880, 0, 0, 4686,
	0, 4140, 0, 3072, 5158, 1610, 5308, 0, 1660, 0, 0, 0, 0, 0, 3097, 0,
	2720, 5082, 5509, 0, 262, 1844, 6139, 5919, 2843, 0, 4726, 53, 138, 0, 2370, 5718,
	5655, 3266, 5622, 2279, 5946, 5733, 77, 0, 0, 0, 0, 6008, 0, 2342, 1760, 0,
	4293, 4069, 0, 3624, 0, 2830, 3093, 6100, 2424, 2400, 0, 2320, 2384, 0, 2410, 0,
	0, 6091, 0, 3659, 0, 0, 3279, 3324, 5120, 2390, 2413, 1920, 5504, 4066, 2375, 6037,
	5881, 5926, 3204, 5734, 0, 4783, 3148, 0, 4042, 3325, 1974, 14, 0, 4670, 5920, 2354,
	0, 6161, 6133, 3006, 6118, 1882, 2377, 0, 0, 0, 1915, 6098, 2394, 2335, 0, 0,
	0, 5002, 0, 0, 0, 0, 0, 0, 318, 0, 2331, 0, 0, 0, 0, 3568,
	0, 0, 0, 0, 4324, 0, 5909, 1765, 4203, 0, 0, 1615, 2306, 0, 0, 0,
	2677, 0, 0, 2334, 0, 0, 3710, 0, 3567, 0, 2259, 0, 0, 0, 3875, 0,
	4969, 0, 4810, 0, 1714, 0, 0, 4750, 0, 0, 3843, 0, 0, 0, 3291, 0,
	5458, 0, 0, 0, 3468, 0, 3870, 2255, 184, 2365, 1876, 0, 5698, 0, 0, 0,
	22, 0, 3516, 0, 4507, 0, 0, 0, 0, 3375, 0, 0, 4633, 291, 0, 0,
	1677, 0, 5026, 0, 0, 0, 0, 0, 3634, 0, 2512, 0, 0, 5087, 0, 0,
	3975, 0, 5295, 5701, 0, 0, 0, 0, 5787, 0, 4011, 0, 4351, 0, 0, 0,
	3188, 3080, 0, 4862, 0, 3889, 0, 0, 2102, 4719, 299, 2511, 0, 0, 0, 4565,
	0, 20, 4308, 4008, 5859, 5931, 5288, 0, 3554, 0, 3736, 2221, 3579, 5705, 3011, 179,
	0, 3328, 0, 0, 4414, 5936, 0, 5282, 0, 6082, 5621, 0, 6111, 4309, 0, 0,
	0, 0, 3010, 1613, 1837, 0, 0, 0, 0, 3290, 0, 1980, 2734, 5296, 3833, 5863,
	1834, 5354, 244, 5783, 3779, 3593, 5139, 5063, 4590, 118, 1788, 5434, 5609, 0, 0, 2474,
	0, 2070, 3136, 4589, 3621, 5485, 6074, 5891, 0, 2538, 0, 4415, 2952, 0, 0, 4292,
	0, 0, 4291, 3660, 3465, 4850, 4676, 3133, 3978, 0, 4214, 27, 0, 3171, 4961, 1657,
	0, 0, 0, 4076, 0, 5563, 3701, 5496, 0, 0, 1728, 4194, 4211, 0, 2913, 0,
	5991, 2822, 6130, 0, 0, 0, 2905, 3194, 5656, 0, 0, 2635, 0, 0, 0, 0,
	4109, 0, 4881, 0, 0, 2242, 0, 0, 3265, 0, 0, 2926, 2850, 0, 0, 3014,
	0, 3541, 0, 0, 0, 1811, 0, 0, 0, 0, 4916, 0, 0, 5671, 3373, 4199,
	5134, 5711, 1854, 0, 0, 0, 0, 0, 5289, 0, 1771, 0, 4790, 0, 3980, 3343,
	0, 0, 1874, 4416, 227, 2649, 0, 0, 0, 0, 0, 5025, 0, 0, 0, 2076,
	5825, 0, 0, 3695, 0, 0, 0, 2567, 0, 0, 0, 4917, 1909, 0, 5437, 187,
	0, 5419, 182, 0, 0, 2186, 0, 3561, 0, 3879, 0, 0, 0, 0, 3039, 0,
	5278, 0, 280, 0, 5060, 5744, 0, 3552, 2244, 5042, 4462, 0, 0, 5506, 0, 0,
	0, 5039, 0, 5682, 0, 4304, 0, 2601, 2686, 0, 0, 3442, 3253, 1658, 0, 0,
	0, 0, 4055, 4618, 0, 0, 0, 2736, 0, 6179, 2860, 2591, 0, 0, 0, 3937,
	2743, 0, 0, 0, 0, 2754, 0, 0, 0, 0, 0, 2704, 2031, 0, 0, 0,
	1651, 0, 0, 0, 0, 0, 3606, 0, 0, 0, 4311, 3903, 4002, 1941, 4828, 2996,
	3577, 0, 4486, 0, 0, 0, 0, 5773, 0, 4049, 5551, 0, 0, 1744, 0, 0,
	0, 0, 0, 3548, 0, 0, 2638, 0, 0, 4340, 1828, 0, 0, 0, 5019, 2711,
	3349, 0, 1624, 3668, 0, 5114, 0, 0, 2997, 0, 0, 4872, 0, 0, 0, 0,
	0, 0, 0, 0, 5057, 0, 0, 3496, 4749, 0, 0, 0, 4495, 2721, 0, 0,
	0, 3949, 0, 0, 0, 3825, 2124, 0, 0, 5343, 0, 0, 0, 3633, 0, 2626,
	0, 0, 4674, 0, 0, 4306, 1663, 0, 0, 0, 0, 3796, 0, 5210, 0, 4697,
	5189, 0, 3595, 0, 0, 4120, 2531, 0, 2805, 0, 0, 0, 0, 4171, 5375, 0,
	0, 5446, 0, 0, 0, 0, 4461, 0, 0, 1706, 2781, 4974, 0, 0, 0, 5272,
	0, 2561, 0, 5306, 2846, 0, 0, 3359, 5663, 4434, 0, 0, 3620, 2723, 0, 0,
	4945, 194, 0, 0, 0, 3539, 0, 0, 3948, 1680, 1886, 3475, 0, 0, 3406, 0,
	0, 3410, 0, 0, 4570, 0, 3904, 3804, 0, 1799, 5013, 0, 0, 2592, 0, 5631,
	0, 0, 2022, 3340, 0, 0, 0, 0, 2647, 3732, 0, 0, 0, 4408, 0, 0,
	3721, 1756, 0, 0, 0, 4302, 4350, 4223, 0, 0, 0, 0, 3434, 0, 0, 2637,
	0, 0, 0, 4756, 0, 5107, 0, 3510, 0, 3752, 0, 0, 0, 3566, 52, 2811,
	4252, 1720, 3103, 0, 3947, 2075, 0, 0, 4569, 0, 253, 0, 3979, 178, 0, 0,
	0, 3174, 0, 0, 4771, 0, 0, 5556, 3587, 0, 0, 0, 181, 0, 4112, 0,
	0, 0, 0, 0, 0, 0, 1620, 0, 0, 2550, 1890, 0, 0, 0, 0, 0,
	0, 0, 0, 2733, 0, 0, 4711, 1745, 0, 2936, 4126, 0, 0, 0, 0, 2506,
	2035, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4789, 0, 0, 0,
	0, 1929, 0, 0, 0, 0, 0, 0, 4682, 0, 4288, 2646, 5003, 4242, 0, 40,
	1766, 0, 0, 4356, 4318, 0, 0, 0, 0, 0, 3365, 0, 0, 0, 0, 5106,
	3585, 0, 0, 0, 0, 2087, 0, 0, 0, 0, 0, 0, 0, 1889, 5649, 0,
	0, 0, 1948, 3456, 2886, 0, 5041, 3673, 0, 0, 0, 0, 0, 0, 5316, 0,
	0, 0, 2613, 2980, 3124, 0, 0, 3811, 254, 0, 0, 0, 0, 3933, 0, 4167,
	0, 2093, 0, 0, 3951, 0, 0, 0, 0, 1824, 0, 0, 1662, 5108, 0, 0,
	0, 0, 0, 2642, 0, 2878, 0, 0, 0, 4267, 0, 0, 252, 0, 0, 4363,
	4470, 0, 0, 2670, 2608, 0, 3829, 4371, 0, 0, 0, 1648, 0, 3454, 2140, 0,
	0, 3609, 3347, 2145, 0, 0, 0, 0, 2853, 2021, 3856, 0, 0, 277, 4731, 0,
	0, 0, 1665, 3380, 2138, 0, 4690, 0, 0, 0, 0, 4193, 0, 4089, 0, 0,
	0, 4584, 1682, 2510, 0, 2119, 0, 0, 5361, 0, 0, 0, 0, 0, 0, 3787,
	0, 3610, 0, 0, 0, 2606, 0, 2149, 4755, 0, 0, 0, 0, 0, 4147, 4282,
	0, 2483, 0, 5095, 0, 2062, 0, 0, 4492, 0, 0, 0, 0, 0, 1670, 0,
	0, 0, 0, 0, 0, 1730, 0, 0, 0, 2832, 0, 0, 5100, 0, 4032, 0,
	0, 0, 0, 2495, 0, 0, 4502, 0, 0, 4442, 3784, 0, 3640, 0, 0, 0,
	1699, 4537, 0, 0, 4715, 0, 0, 0, 0, 0, 1818, 2831, 0, 0, 0, 0,
	0, 4564, 0, 3414, 5747, 3851, 0, 2745, 1764, 0, 3437, 0, 0, 0, 0, 0,
	0, 2043, 0, 3440, 0, 4077, 0, 2979, 0, 0, 0, 0, 0, 0, 4967, 0,
	0, 2038, 0, 0, 3893, 2679, 0, 0, 3584, 4092, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 3426, 3644, 2042, 0, 0, 0, 0, 0, 0,
	0, 239, 3112, 0, 4247, 0, 0, 0, 16, 0, 2873, 46, 0, 3356, 3822, 0,
	4487, 0, 0, 0, 0, 0, 0, 1856, 0, 174, 0, 0, 0, 4530, 0, 0,
	0, 0, 0, 3627, 1942, 5143, 0, 0, 0, 1947, 0, 0, 0, 0, 0, 0,
	2546, 0, 4753, 0, 0, 1833, 4054, 0, 0, 0, 0, 0, 4602, 0, 0, 4243,
	0, 0, 3589, 0, 3667, 0, 0, 0, 4131, 4574, 4673, 0, 0, 0, 0, 2560,
	0, 0, 3991, 0, 3696, 5186, 0, 0, 5231, 2681, 0, 0, 3793, 4490, 0, 0,
	1918, 0, 0, 0, 0, 1616, 0, 3592, 0, 3868, 0, 4649, 0, 0, 0, 0,
	4095, 0, 0, 0, 3795, 0, 3857, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1973, 3647, 1855, 3493, 0, 2541, 0, 3601, 2644, 0, 0, 3026, 4156, 0, 0, 0,
	0, 0, 3906, 0, 0, 0, 0, 2513, 0, 0, 0, 0, 0, 0, 3656, 4013,
	0, 4653, 4139, 0, 0, 0, 0, 3357, 0, 0, 3916, 0, 0, 5145, 3498, 4724,
	0, 3717, 0, 2957, 1813, 0, 0, 49, 0, 2030, 0, 0, 55, 0, 0, 0,
	4273, 0, 0, 0, 0, 0, 0, 2641, 0, 0, 0, 0, 0, 4180, 0, 0,
	0, 2558, 3405, 3690, 0, 0, 0, 0, 0, 0, 0, 0, 2547, 0, 0, 0,
	3827, 4720, 0, 0, 0, 0, 0, 87, 0, 0, 3899, 0, 3608, 4527, 0, 0,
	3030, 0, 0, 3550, 3352, 0, 0, 0, 0, 0, 4406, 0, 4542, 0, 0, 0,
	0, 2645, 0, 0, 0, 0, 0, 0, 0, 1965, 0, 2877, 0, 2636, 0, 0,
	0, 0, 0, 0, 0, 4327, 0, 0, 0, 2048, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 2521, 0, 4052, 0, 0, 0, 3874, 0, 0, 0, 0, 0, 2631,
	2678, 0, 0, 0, 4880, 4107, 1905, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 4867, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2490, 0, 0, 0, 3435,
	0, 3801, 0, 4262, 0, 0, 0, 0, 0, 0, 1976, 0, 0, 0, 3932, 0,
	0, 2629, 0, 0, 0, 0, 0, 0, 0, 0, 1892, 0, 0, 0, 0, 3876,
	5410, 0, 2834, 1823, 0, 0, 0, 193, 1668, 3748, 0, 0, 0, 0, 3361, 0,
	0, 4096, 5144, 0, 0, 0, 3363, 0, 0, 0, 3782, 4714, 0, 0, 0, 0,
	3834, 3460, 0, 0, 4871, 0, 4717, 0, 0, 0, 0, 0, 0, 0, 2863, 0,
	4028, 3018, 0, 0, 0, 0, 0, 0, 0, 2044, 0, 0, 0, 4446, 0, 0,
	4968, 0, 1679, 0, 0, 1883, 0, 0, 2672, 4440, 0, 0, 0, 0, 4601, 0,
	0, 0, 1687, 1992, 0, 0, 0, 2758, 0, 0, 0, 4330, 3549, 0, 0, 0,
	4547, 1814, 0, 4056, 1696, 0, 3163, 0, 0, 0, 0, 5113, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 4591, 4433, 0, 4317, 0, 4322, 0, 4900, 4800, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 4266, 0, 0, 0, 0, 4938, 0, 0, 0,
	0, 1784, 0, 3692, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4094, 1785, 0, 0, 0, 0,
	0, 1752, 0, 0, 0, 2854, 3480, 1709, 0, 0, 0, 4268, 0, 0, 3477, 0,
	0, 0, 2012, 0, 0, 1701, 4217, 4493, 0, 3035, 1768, 0, 2023, 0, 3033, 0,
	267, 0, 2045, 4104, 3853, 0, 2735, 0, 0, 0, 0, 0, 0, 0, 5094, 1625,
	5309, 0, 3467, 0, 4575, 2762, 0, 4396, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 4895, 0, 1674, 3914, 0, 0, 1795, 0, 0, 0, 0, 0, 0, 0,
	0, 2535, 230, 0, 2731, 0, 0, 0, 0, 0, 0, 0, 3443, 0, 4983, 4457,
	0, 3526, 0, 3326, 0, 4101, 0, 0, 0, 4706, 0, 0, 2039, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 23, 2029, 4275, 0, 0, 0, 3651,
	0, 0, 0, 60, 0, 3686, 0, 3528, 2788, 0, 3995, 0, 0, 5110, 0, 1957,
	0, 0, 0, 0, 0, 4314, 0, 1836, 0, 0, 0, 0, 0, 0, 0, 0,
	3888, 0, 0, 0, 0, 4664, 0, 0, 0, 0, 0, 0, 2684, 0, 5334, 4436,
	3939, 0, 1790, 1612, 0, 2651, 3021, 0, 0, 0, 0, 68, 3638, 1803, 0, 264,
	0, 4718, 0, 0, 1878, 0, 0, 0, 3661, 0, 0, 0, 0, 0, 0, 3866,
	4885, 0, 0, 0, 3393, 0, 3367, 0, 2473, 0, 0, 0, 0, 0, 1704, 0,
	0, 0, 3351, 21, 0, 3670, 1914, 1772, 4759, 0, 0, 0, 3481, 0, 0, 3718,
	0, 0, 1866, 0, 0, 0, 0, 4050, 0, 0, 1985, 0, 0, 207, 0, 0,
	2470, 0, 0, 0, 0, 2033, 0, 3469, 0, 0, 2472, 0, 0, 2017, 0, 0,
	0, 0, 0, 0, 1901, 0, 0, 4652, 0, 0, 0, 0, 4921, 243, 0, 0,
	0, 0, 0, 0, 2047, 0, 0, 0, 0, 0, 185, 2468, 0, 263, 0, 0,
	1614, 2941, 219, 0, 0, 0, 168, 0, 0, 4382, 0, 0, 0, 0, 2956, 0,
	0, 0, 0, 0, 2963, 1875, 2947, 0, 0, 1664, 2661, 0, 0, 0, 5190, 2750,
	0, 2792, 0, 0, 0, 0, 3501, 0, 0, 0, 3029, 0, 3453, 0, 3478, 0,
	0, 4009, 0, 0, 0, 0, 4888, 0, 0, 0, 4281, 3418, 0, 0, 0, 2074,
	0, 0, 3806, 2077, 4768, 3652, 0, 0, 5086, 4648, 0, 0, 0, 0, 0, 0,
	0, 0, 3369, 0, 0, 4443, 0, 0, 0, 0, 0, 0, 0, 2880, 0, 0,
	0, 0, 0, 5150, 0, 0, 0, 0, 0, 2849, 2856, 2738, 4173, 0, 0, 0,
	3639, 0, 1770, 0, 4472, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3830, 0,
	4902, 4503, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2604, 0, 0, 0,
	0, 0, 4012, 0, 3700, 1825, 1847, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 3445, 0, 0, 0, 0, 0, 2662, 0, 0, 35, 0, 0, 0, 221, 0,
	0, 0, 0, 2508, 0, 2851, 0, 4453, 0, 0, 0, 0, 0, 0, 2143, 0,
	3792, 0, 3436, 0, 0, 0, 0, 0, 0, 0, 3446, 0, 3654, 0, 2779, 0,
	0, 0, 0, 0, 0, 0, 0, 2744, 2086, 0, 0, 3715, 0, 1832, 0, 0,
	0, 0, 3515, 0, 0, 0, 0, 0, 1850, 0, 0, 0, 0, 0, 208, 4132,
	84, 0, 0, 0, 0, 4925, 4041, 0, 0, 0, 1713, 0, 0, 0, 0, 0,
	0, 0, 3675, 0, 1860, 0, 0, 0, 0, 1758, 3162, 4370, 0, 0, 0, 0,
	0, 2616, 0, 0, 0, 4857, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	42, 0, 0, 4284, 0, 5152, 0, 0, 0, 0, 0, 0, 0, 4681, 0, 0,
	3837, 0, 1949, 1638, 0, 0, 0, 0, 0, 0, 4499, 3693, 0, 0, 0, 3892,
	4661, 0, 0, 0, 0, 0, 0, 75, 0, 0, 0, 0, 0, 0, 0, 0,
	4541, 0, 0, 0, 5207, 2475, 0, 0, 0, 0, 0, 2730, 0, 1656, 0, 4439,
	0, 4014, 0, 0, 206, 0, 0, 0, 0, 0, 4274, 0, 0, 0, 0, 0,
	3699, 0, 0, 0, 0, 0, 0, 3649, 0, 3808, 4650, 2011, 2586, 3836, 3816, 0,
	0, 0, 0, 0, 0, 0, 0, 5091, 2671, 4427, 0, 4098, 0, 0, 0, 0,
	0, 0, 2751, 0, 0, 2557, 0, 4456, 0, 2622, 0, 3553, 0, 0, 1661, 0,
	1900, 1908, 0, 0, 0, 170, 0, 0, 0, 0, 0, 0, 0, 4445, 0, 0,
	4707, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4070, 3397, 0, 0,
	0, 0, 0, 0, 2741, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5363,
	3884, 0, 0, 0, 3775, 0, 4611, 0, 0, 0, 0, 0, 0, 3034, 0, 4215,
	0, 0, 0, 5099, 0, 0, 0, 0, 0, 3719, 0, 0, 0, 3032, 0, 71,
	0, 5187, 0, 0, 0, 0, 2536, 0, 0, 0, 44, 3702, 0, 4251, 0, 0,
	0, 0, 0, 0, 0, 3502, 3438, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 3778, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 3431, 0, 0, 0, 0, 33, 0, 0, 0, 2933, 0, 0, 0, 3551, 0,
	3341, 0, 0, 4106, 0, 2493, 0, 3872, 0, 0, 0, 0, 0, 0, 2688, 0,
	2865, 0, 0, 0, 0, 3428, 0, 0, 1794, 0, 2868, 0, 2787, 0, 0, 0,
	0, 5171, 0, 0, 0, 4091, 0, 0, 3697, 0, 0, 2869, 4592, 0, 0, 0,
	0, 0, 0, 0, 2556, 0, 4100, 0, 1838, 2612, 0, 0, 0, 0, 0, 1879,
	0, 0, 0, 0, 0, 0, 0, 0, 1666, 0, 0, 4236, 3657, 0, 0, 0,
	0, 0, 0, 2722, 0, 0, 4133, 0, 4227, 0, 0, 220, 0, 0, 0, 0,
	1817, 0, 2673, 176, 0, 3993, 31, 0, 0, 0, 4987, 4816, 0, 3650, 0, 3421,
	0, 0, 0, 0, 3780, 3798, 3512, 0, 0, 0, 0, 0, 3569, 0, 0, 1891,
	0, 0, 0, 0, 1672, 0, 2938, 0, 0, 0, 0, 0, 0, 4264, 0, 4762,
	0, 0, 0, 0, 0, 3986, 0, 4355, 0, 4940, 0, 2497, 2859, 4323, 0, 0,
	3617, 5318, 0, 4596, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 3355, 0, 0, 86, 0, 3712, 0, 0, 0, 1919, 0, 0, 0,
	0, 0, 0, 0, 0, 2746, 0, 0, 0, 0, 0, 4237, 1887, 3022, 1637, 1733,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4058, 0, 0,
	0, 0, 0, 0, 0, 2769, 0, 0, 3794, 0, 0, 0, 85, 2085, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 1782, 0, 2019, 4511, 0, 0, 50, 0,
	0, 0, 0, 0, 0, 0, 0, 4501, 3635, 0, 1652, 0, 0, 0, 4563, 0,
	0, 4680, 0, 3399, 0, 0, 4428, 2942, 0, 0, 3096, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 4431, 4342, 4044, 0, 0, 0, 0, 0, 1827, 1778, 0,
	0, 0, 3354, 0, 0, 0, 0, 67, 0, 0, 0, 0, 3407, 0, 2486, 0,
	1831, 4893, 5196, 0, 3626, 3575, 0, 0, 0, 0, 0, 2009, 0, 2955, 0, 5527,
	4125, 4877, 0, 3513, 2740, 3371, 0, 1843, 0, 0, 0, 4791, 0, 4212, 0, 0,
	0, 0, 0, 3682, 0, 4484, 2617, 0, 0, 0, 0, 0, 1972, 0, 0, 3623,
	4108, 0, 0, 2014, 2037, 4230, 0, 0, 0, 0, 0, 4508, 3430, 0, 4216, 0,
	218, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4021,
	1711, 0, 0, 0, 0, 0, 0, 5153, 0, 3427, 1964, 4053, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2527, 0, 0,
	0, 0, 0, 0, 0, 3788, 0, 0, 0, 0, 0, 5326, 4244, 0, 2528, 3031,
	3572, 0, 0, 0, 3348, 0, 3672, 0, 0, 0, 0, 4784, 0, 0, 4435, 0,
	4151, 0, 0, 0, 3402, 3450, 3912, 62, 0, 0, 0, 0, 0, 4231, 4548, 2954,
	1723, 0, 2667, 2864, 0, 0, 0, 1710, 4019, 0, 0, 0, 0, 4031, 2623, 0,
	0, 0, 0, 2839, 0, 0, 0, 0, 3878, 47, 3108, 4466, 3433, 0, 0, 0,
	0, 0, 4004, 0, 0, 0, 0, 0, 3095, 0, 0, 0, 0, 0, 0, 0,
	0, 4946, 0, 3789, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 3417, 3873, 0, 3770, 0, 0, 0, 0, 2858, 0, 0, 0, 0, 0, 0,
	3791, 0, 3394, 0, 0, 4876, 2757, 1646, 0, 0, 1629, 4018, 0, 0, 0, 0,
	0, 0, 1958, 2008, 4391, 0, 0, 5090, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 2879, 0, 0, 4161, 0, 1762, 0, 0, 0, 4438, 0, 0, 0, 0,
	0, 1631, 0, 0, 0, 0, 4027, 2084, 0, 0, 0, 5004, 0, 0, 0, 0,
	0, 4463, 0, 0, 0, 0, 0, 2540, 0, 0, 0, 0, 0, 0, 4647, 0,
	0, 0, 0, 0, 0, 4234, 0, 0, 0, 0, 0, 0, 0, 188, 0, 1956,
	0, 0, 1689, 0, 1718, 2945, 0, 0, 0, 0, 1848, 0, 0, 43, 0, 0,
	0, 0, 0, 0, 0, 0, 4932, 0, 0, 2615, 0, 4060, 4332, 0, 186, 0,
	0, 0, 0, 0, 4136, 4747, 0, 3473, 3392, 2610, 0, 0, 0, 0, 0, 0,
	2507, 0, 0, 1773, 37, 0, 0, 4033, 0, 5201, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1627, 0, 4043, 0, 0, 0, 0, 0, 1725,
	4122, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2492, 2761,
	0, 0, 4246, 0, 0, 3655, 2083, 0, 0, 0, 0, 2007, 0, 0, 0, 0,
	3570, 0, 0, 4073, 0, 0, 0, 0, 0, 4135, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3497, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 29, 0, 4218, 0, 0, 0, 0, 2603,
	0, 0, 3987, 0, 2639, 3573, 0, 2552, 0, 3911, 0, 0, 3637, 0, 0, 0,
	1913, 0, 0, 19, 2836, 0, 0, 0, 0, 0, 0, 2964, 0, 4677, 2965, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2766, 2619, 0, 0, 0, 0,
	0, 0, 0, 2614, 2559, 0, 0, 0, 0, 0, 2767, 5151, 66, 0, 0, 26,
	3590, 0, 0, 0, 0, 5188, 0, 1622, 0, 4746, 0, 0, 0, 0, 3409, 0,
	2542, 0, 0, 2937, 0, 0, 0, 4152, 3439, 0, 0, 0, 0, 28, 0, 58,
	0, 0, 3612, 0, 0, 0, 0, 0, 199, 0, 1774, 0, 2966, 4072, 4278, 0,
	0, 0, 0, 0, 0, 1688, 0, 3429, 0, 4157, 0, 0, 0, 0, 0, 0,
	0, 3389, 0, 1810, 0, 1979, 0, 4449, 0, 0, 0, 0, 1826, 0, 4506, 0,
	0, 0, 0, 0, 2728, 2760, 0, 3848, 0, 0, 0, 0, 0, 0, 4868, 0,
	0, 4068, 2607, 0, 0, 0, 1618, 0, 0, 4429, 0, 0, 0, 0, 3381, 0,
	2501, 0, 3630, 0, 0, 0, 3687, 0, 0, 1654, 0, 0, 3844, 2748, 2496, 0,
	0, 0, 3737, 0, 0, 0, 0, 0, 0, 0, 4703, 0, 0, 4675, 0, 2551,
	0, 0, 0, 0, 4454, 0, 0, 0, 2747, 0, 0, 0, 0, 0, 0, 0,
}
